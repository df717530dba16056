// Package game owns the in-session state machine: phases, the per-question
// countdown, scoring with time and streak bonuses, and round regeneration.
// All transitions are synchronous and run to completion.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"dictionduel/internal/domain"
	"dictionduel/internal/leaderboard"
	"dictionduel/internal/shuffle"
)

// NoSelection marks a question resolved by timeout rather than a choice.
// It never matches a correct-answer index.
const NoSelection = -1

const basePoints = 10

// Rules are the per-round tunables.
type Rules struct {
	QuestionsPerRound int
	TimePerQuestion   int
	StreakThreshold   int
	StreakBonusPoints int
}

func DefaultRules() Rules {
	return Rules{
		QuestionsPerRound: 10,
		TimePerQuestion:   15,
		StreakThreshold:   3,
		StreakBonusPoints: 5,
	}
}

// Session is a single player's game. The full question pool is built once by
// the bank and shared in; each round draws a fresh shuffled subset from it.
type Session struct {
	rules    Rules
	pool     []domain.Question
	scores   *leaderboard.Store
	notifier Notifier
	rnd      *rand.Rand

	mu         sync.Mutex
	phase      domain.Phase
	playerName string
	questions  []domain.Question
	current    int
	score      int
	streak     int
	selected   int
	answered   bool
	timeLeft   int
	board      []domain.ScoreRecord
}

func NewSession(ctx context.Context, pool []domain.Question, scores *leaderboard.Store, notifier Notifier, rules Rules) *Session {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Session{
		rules:    rules,
		pool:     pool,
		scores:   scores,
		notifier: notifier,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		phase:    domain.PhaseWelcome,
		selected: NoSelection,
		timeLeft: rules.TimePerQuestion,
		board:    scores.Load(ctx),
	}
}

// NewSessionWithRand is test-only for deterministic draws.
func NewSessionWithRand(ctx context.Context, pool []domain.Question, scores *leaderboard.Store, notifier Notifier, rules Rules, rnd *rand.Rand) *Session {
	s := NewSession(ctx, pool, scores, notifier, rules)
	s.rnd = rnd
	return s
}

// SetPlayerName stores the name as given. Only meaningful on the welcome screen.
func (s *Session) SetPlayerName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseWelcome {
		return
	}
	s.playerName = name
}

// StartGame draws a round and transitions to playing. The name must be
// non-empty after trimming and the pool must not be empty.
func (s *Session) StartGame(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return domain.ErrNameRequired
	}
	if len(s.pool) == 0 {
		return domain.ErrNoQuestions
	}
	s.playerName = name
	s.startRoundLocked()
	return nil
}

// PlayAgain draws a fresh round from the retained pool, keeping the player name.
func (s *Session) PlayAgain() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhaseFinished {
		return domain.ErrNotFinished
	}
	if len(s.pool) == 0 {
		return domain.ErrNoQuestions
	}
	s.startRoundLocked()
	return nil
}

func (s *Session) startRoundLocked() {
	drawn := shuffle.Shuffle(s.rnd, s.pool)
	if len(drawn) > s.rules.QuestionsPerRound {
		drawn = drawn[:s.rules.QuestionsPerRound]
	}
	s.questions = drawn
	s.current = 0
	s.score = 0
	s.streak = 0
	s.selected = NoSelection
	s.answered = false
	s.timeLeft = s.rules.TimePerQuestion
	s.phase = domain.PhasePlaying
}

// SubmitAnswer resolves the current question with the player's choice.
// Duplicate submissions after the first are no-ops.
func (s *Session) SubmitAnswer(option int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhasePlaying || s.answered {
		return
	}
	s.resolveLocked(option)
}

// Tick counts the current question down one second. At zero the question
// resolves as a timeout through the same scoring path as an explicit answer.
// Ticks outside an open question are no-ops, so a stray timer firing after
// the answer cannot change state. Returns whether anything changed.
func (s *Session) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhasePlaying || s.answered {
		return false
	}
	if s.timeLeft <= 1 {
		s.resolveLocked(NoSelection)
		return true
	}
	s.timeLeft--
	return true
}

// resolveLocked applies the scoring rules for a selection (or NoSelection for
// a timeout) and leaves the round paused until NextQuestion.
func (s *Session) resolveLocked(option int) {
	question := s.questions[s.current]
	correct := option == question.CorrectAnswer

	if correct {
		award := basePoints + s.timeLeft + s.streakBonus()
		s.score += award
		s.streak++

		title := "Harika, doğru bildin!"
		if s.streak > 1 {
			title = fmt.Sprintf("%s %dx Seri!", title, s.streak)
		}
		s.notifier.Notify(Notification{
			Title:       title,
			Description: fmt.Sprintf("+%d Puan", award),
			Severity:    SeverityDefault,
		})
	} else {
		s.streak = 0
		title := "Yanlış Cevap!"
		if option == NoSelection {
			title = "Süre doldu!"
		}
		s.notifier.Notify(Notification{
			Title:       title,
			Description: "Serin bozuldu, pes etme!",
			Severity:    SeverityDestructive,
		})
	}

	s.answered = true
	s.selected = option
}

// streakBonus is computed from the streak entering the answer: nothing below
// the threshold, then a linear scale beyond it.
func (s *Session) streakBonus() int {
	if s.streak < s.rules.StreakThreshold {
		return 0
	}
	return s.rules.StreakBonusPoints * (s.streak - s.rules.StreakThreshold + 1)
}

// NextQuestion advances past a resolved question, or finishes the round after
// the last one. A call before the question is resolved is a no-op.
func (s *Session) NextQuestion(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhasePlaying || !s.answered {
		return
	}
	if s.current < len(s.questions)-1 {
		s.current++
		s.answered = false
		s.selected = NoSelection
		s.timeLeft = s.rules.TimePerQuestion
		return
	}
	s.finishLocked(ctx)
}

// FinishGame forces the session into the finished phase. Escape hatch for
// rounds that cannot continue (e.g. zero questions).
func (s *Session) FinishGame(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == domain.PhaseFinished {
		return
	}
	s.finishLocked(ctx)
}

// finishLocked records the final score exactly once and refreshes the cached
// leaderboard view.
func (s *Session) finishLocked(ctx context.Context) {
	s.phase = domain.PhaseFinished
	s.scores.Save(ctx, s.playerName, s.score)
	s.board = s.scores.Load(ctx)
}

// ReturnToWelcome abandons the session: clears the player and round state and
// refreshes the leaderboard. Valid from any phase.
func (s *Session) ReturnToWelcome(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerName = ""
	s.questions = nil
	s.current = 0
	s.score = 0
	s.streak = 0
	s.selected = NoSelection
	s.answered = false
	s.timeLeft = s.rules.TimePerQuestion
	s.board = s.scores.Load(ctx)
	s.phase = domain.PhaseWelcome
}

// Snapshot is the immutable view handed to transports for rendering.
type Snapshot struct {
	Phase          domain.Phase         `json:"phase"`
	PlayerName     string               `json:"playerName"`
	PoolSize       int                  `json:"poolSize"`
	QuestionCount  int                  `json:"questionCount"`
	CurrentIndex   int                  `json:"currentIndex"`
	Question       *domain.Question     `json:"question,omitempty"`
	Score          int                  `json:"score"`
	Streak         int                  `json:"streak"`
	TimeLeft       int                  `json:"timeLeft"`
	Answered       bool                 `json:"answered"`
	SelectedAnswer int                  `json:"selectedAnswer"`
	Leaderboard    []domain.ScoreRecord `json:"leaderboard"`
	HighScore      bool                 `json:"highScore"`
}

// Snapshot returns the current view of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Phase:          s.phase,
		PlayerName:     s.playerName,
		PoolSize:       len(s.pool),
		QuestionCount:  len(s.questions),
		CurrentIndex:   s.current,
		Score:          s.score,
		Streak:         s.streak,
		TimeLeft:       s.timeLeft,
		Answered:       s.answered,
		SelectedAnswer: s.selected,
		Leaderboard:    append([]domain.ScoreRecord(nil), s.board...),
	}
	if s.phase == domain.PhasePlaying && s.current < len(s.questions) {
		question := s.questions[s.current]
		snap.Question = &question
	}
	if s.phase == domain.PhaseFinished {
		snap.HighScore = s.scores.Qualifies(s.board, s.score)
	}
	return snap
}
