package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/pixverse/internal/config"
	"github.com/abhisek/pixverse/internal/content"
	"github.com/abhisek/pixverse/internal/progress"
	"github.com/abhisek/pixverse/internal/puzzle"
	"github.com/abhisek/pixverse/internal/store"
)

// env is everything a command needs: resolved config, logger, content and
// a progress store backed by SQLite (or memory when the file cannot be
// opened).
type env struct {
	cfg      config.Config
	logger   *log.Logger
	pack     *content.Pack
	progress *progress.Store
	shuffle  puzzle.ShuffleOptions
	rng      *rand.Rand

	closers []func() error
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i]()
	}
}

// loadConfig reads PIXVERSE_* variables and applies flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	overrides := map[string]*string{
		"db":          &cfg.DBPath,
		"content":     &cfg.ContentPath,
		"log-file":    &cfg.LogFile,
		"log-level":   &cfg.LogLevel,
		"target-date": &cfg.TargetDate,
	}
	for name, dst := range overrides {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*log.Logger, func() error, error) {
	if cfg.LogFile == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}
	if err := store.EnsureDir(cfg.LogFile); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           cfg.Level(),
		Prefix:          "pixverse",
	})
	return logger, f.Close, nil
}

// resolveDBPath returns the configured path, or the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func loadPack(cfg config.Config) (*content.Pack, error) {
	if cfg.ContentPath == "" {
		return content.Default()
	}
	return content.Load(cfg.ContentPath)
}

// setup builds the env shared by every command.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	e := &env{
		cfg:     cfg,
		logger:  logger,
		shuffle: puzzle.ShuffleOptions{Solvable: cfg.FairShuffle},
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid()))),
		closers: []func() error{closeLog},
	}

	e.pack, err = loadPack(cfg)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("load content: %w", err)
	}

	var repo store.SnapshotRepo
	dbPath, err := resolveDBPath(cfg)
	if err == nil {
		var st *store.Store
		st, err = store.Open(dbPath)
		if err == nil {
			e.closers = append(e.closers, st.Close)
			repo = st.SnapshotRepo()
		}
	}
	if repo == nil {
		logger.Warn("progress will not be saved", "db", dbPath, "err", err)
		fmt.Fprintln(os.Stderr, "Could not open the progress database:", err)
		fmt.Fprintln(os.Stderr, "Progress will not be saved this time.")
		repo = store.NewMemoryRepo()
	}

	target, force := progress.DefaultTarget(time.Now()), false
	explicit, err := cfg.ExplicitTarget(time.Local)
	switch {
	case err == nil:
		target, force = explicit, true
	case !errors.Is(err, config.ErrNoTargetDate):
		e.Close()
		return nil, err
	}

	e.progress = progress.NewStore(repo, progress.Defaults(target), progress.Options{
		SessionID:   uuid.NewString(),
		ForceTarget: force,
		Logger:      logger,
	})
	logger.Info("starting", "version", version, "db", dbPath, "target", target.Format(config.DateLayout))
	return e, nil
}
