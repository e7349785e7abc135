package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordtide/internal/config"
	"github.com/robalobadob/wordtide/internal/daily"
	"github.com/robalobadob/wordtide/internal/game"
	"github.com/robalobadob/wordtide/internal/history"
	"github.com/robalobadob/wordtide/internal/httpserver"
	"github.com/robalobadob/wordtide/internal/store"
	"github.com/robalobadob/wordtide/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Info().Int("words", words.Count()).Msg("word list loaded")

	db, err := openDB(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	recs := store.NewMemory()
	svc := game.NewService(recs, nil)
	srv := httpserver.New(cfg, svc, history.NewStore(db))

	go sweepLoop(recs, cfg.SweepInterval, cfg.RetentionDays)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting wordtide server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// sweepLoop periodically drops day records older than the retention window.
// Old dates are unreachable by date-keyed reads, so sweeping only reclaims
// memory; it never changes what a caller sees.
func sweepLoop(recs *store.Memory, every time.Duration, retentionDays int) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for range t.C {
		cutoff := daily.Key(time.Now().AddDate(0, 0, -retentionDays))
		if removed := recs.Sweep(cutoff); removed > 0 {
			log.Info().Int("removed", removed).Str("cutoff", cutoff).Msg("swept stale day records")
		}
	}
}
