package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/numkit/internal/engine"
	"github.com/roach88/numkit/internal/gcd"
	"github.com/roach88/numkit/internal/store"
)

// newLogger returns a text logger on w, at Debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

// session is one command's engine, plus the history store when --db is set.
type session struct {
	engine *engine.Engine
	store  *store.Store
	logger *slog.Logger
}

// openSession builds the engine for a computing command. With --db every
// record is written to the history; without it nothing is persisted.
// --resume continues an existing run after its last recorded seq.
func openSession(opts *RootOptions, cmd *cobra.Command, alg gcd.Algorithm) (*session, error) {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	runIDs := opts.RunIDs
	if runIDs == nil {
		runIDs = engine.UUIDv7Generator{}
	}

	engineOpts := []engine.EngineOption{
		engine.WithAlgorithm(alg),
		engine.WithLogger(logger),
	}

	if opts.Resume != "" && opts.Database == "" {
		return nil, fmt.Errorf("--resume requires --db")
	}

	s := &session{logger: logger}
	if opts.Database != "" {
		logger.Debug("opening database", "path", opts.Database)
		st, err := store.Open(opts.Database)
		if err != nil {
			return nil, err
		}
		s.store = st
		engineOpts = append(engineOpts, engine.WithRecorder(st))

		if opts.Resume != "" {
			last, err := st.LastSeq(commandContext(cmd), opts.Resume)
			if err != nil {
				st.Close()
				return nil, err
			}
			logger.Debug("resuming run", "run_id", opts.Resume, "last_seq", last)
			runIDs = engine.NewFixedGenerator(opts.Resume)
			engineOpts = append(engineOpts, engine.WithClock(engine.NewClockAt(last)))
		}
	}

	s.engine = engine.New(runIDs, engineOpts...)
	logger.Debug("run started", "run_id", s.engine.RunID(), "history", s.store != nil)
	return s, nil
}

// Close releases the history store, if any.
func (s *session) Close() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Error("error closing database", "error", err)
	}
}

// commandContext returns the command's context, or Background when the
// command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
