package cmd

import (
	"time"

	"github.com/theirongolddev/parlsim/internal/cli"
	"github.com/theirongolddev/parlsim/internal/config"
	"github.com/theirongolddev/parlsim/internal/engine"
	"github.com/theirongolddev/parlsim/internal/store"
)

// journalPath resolves --db, then the config, then the XDG default.
func journalPath(cfg config.Config) string {
	switch {
	case flagDB != "":
		return flagDB
	case cfg.General.DBPath != "":
		return cfg.General.DBPath
	default:
		return store.DefaultPath()
	}
}

func openJournal(cfg config.Config) (*store.Journal, error) {
	return store.Open(journalPath(cfg))
}

// recordGame appends the finished game to the journal. Journal failures
// are reported but never fail the game itself.
func recordGame(cfg config.Config, s *engine.Session) {
	if flagNoJournal || !cfg.General.Journal || !s.Generated() {
		return
	}
	j, err := openJournal(cfg)
	if err != nil {
		warnf("journal unavailable: %v", err)
		return
	}
	defer j.Close()

	id, err := j.SaveGame(s.Summary(time.Now()))
	if err != nil {
		warnf("recording game: %v", err)
		return
	}
	progressf("  Game recorded as %s (seed %d)\n", cli.ShortID(id), s.Seed())
}
