package cli

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shahrukh04/medicine-management-app/internal/auth"
	"github.com/shahrukh04/medicine-management-app/internal/config"
	"github.com/shahrukh04/medicine-management-app/internal/notify"
	"github.com/shahrukh04/medicine-management-app/internal/store"
)

// app is the composition of everything a command needs: effective config,
// the change broadcaster, and one open store handle. The broadcaster is
// owned here and injected into the store, never reached through a global.
type app struct {
	cfg config.Config
	bus *notify.Broadcaster
	db  *store.Store
}

// openApp loads config and opens the store. A storage failure is surfaced
// but the caller decides whether the command can proceed degraded.
func (opts *RootOptions) openApp() (*app, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load config", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o700); err != nil {
		return nil, WrapExitError(ExitFailure, "create data directory", err)
	}

	bus := notify.NewBroadcaster()
	db, err := store.Open(cfg.DBPath, bus)
	if err != nil {
		return nil, WrapExitError(ExitFailure, "open medicine store", err)
	}

	return &app{cfg: cfg, bus: bus, db: db}, nil
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// warnIfNoSession logs a warning when no active session is stored. Stock
// commands still run: authentication is an external concern and the local
// store works without it.
func (a *app) warnIfNoSession() {
	s, err := auth.LoadSession(a.cfg.SessionPath)
	if errors.Is(err, auth.ErrNoSession) || (err == nil && !s.Active(time.Now())) {
		logrus.Warn("no active session; run 'medman login' to sign in")
		return
	}
	if err != nil {
		logrus.WithError(err).Warn("could not read stored session")
	}
}

// formatter builds the output formatter for a command, honouring the
// writer cobra was given (tests capture output this way).
func (opts *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}
