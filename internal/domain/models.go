package domain

// Question is a two-option spelling question. Options are kept in a fixed but
// randomized order; CorrectAnswer is the index (0 or 1) of the right spelling.
type Question struct {
	Options       [2]string `json:"options"`
	CorrectAnswer int       `json:"correctAnswer"`
	Explanation   string    `json:"explanation"`
}

// WordPair is the raw record a question is built from: a correct spelling,
// one wrong spelling, and an explanation of the rule.
type WordPair struct {
	Correct     string
	Wrong       string
	Explanation string
}

// Valid reports whether the pair can become a question.
func (p WordPair) Valid() bool {
	return p.Correct != "" && p.Wrong != ""
}

// ScoreRecord is one persisted leaderboard entry.
type ScoreRecord struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// Phase is the top-level state of a game session.
type Phase string

const (
	PhaseWelcome  Phase = "welcome"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)
