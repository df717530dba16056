package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dictionduel/internal/bank"
	"dictionduel/internal/config"
	"dictionduel/internal/game"
	infrapg "dictionduel/internal/infra/postgres"
	infraredis "dictionduel/internal/infra/redis"
	"dictionduel/internal/leaderboard"
	transport "dictionduel/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const (
	defaultWordListPath    = "data/kelimeler.csv"
	defaultLeaderboardPath = "data/leaderboard.json"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the spelling duel server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var source bank.WordSource = bank.NewFileSource(wordListPath(cfg))
	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
		source = infrapg.NewWordSource(pool)
	}

	questionBank := bank.New(source)
	if questions, err := questionBank.Questions(ctx); err != nil {
		// Serve anyway: clients see the "no questions available" state.
		log.Printf("question pool unavailable: %v", err)
	} else {
		log.Printf("question pool ready with %d questions", len(questions))
	}

	var kv leaderboard.KV = leaderboard.NewFileKV(leaderboardPath(cfg))
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		kv = infraredis.NewLeaderboardKV(client)
	}
	scores := leaderboard.NewStore(kv)

	wsHandler := transport.NewWSHandler(questionBank, scores, gameRules(cfg))

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:    ":" + finalPort,
		Handler: mux,
	}

	go func() {
		log.Printf("starting dictionduel on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func wordListPath(cfg config.Config) string {
	if cfg.Questions.Path != "" {
		return cfg.Questions.Path
	}
	return defaultWordListPath
}

func leaderboardPath(cfg config.Config) string {
	if cfg.Leaderboard.Path != "" {
		return cfg.Leaderboard.Path
	}
	return defaultLeaderboardPath
}

// gameRules applies configured tunables over the defaults.
func gameRules(cfg config.Config) game.Rules {
	rules := game.DefaultRules()
	if cfg.Game.QuestionsPerRound > 0 {
		rules.QuestionsPerRound = cfg.Game.QuestionsPerRound
	}
	if cfg.Game.TimePerQuestion > 0 {
		rules.TimePerQuestion = cfg.Game.TimePerQuestion
	}
	if cfg.Game.StreakThreshold > 0 {
		rules.StreakThreshold = cfg.Game.StreakThreshold
	}
	if cfg.Game.StreakBonusPoints > 0 {
		rules.StreakBonusPoints = cfg.Game.StreakBonusPoints
	}
	return rules
}
