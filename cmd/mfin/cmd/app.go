package cmd

import (
	"io"

	mfinerror "github.com/msto63/mFIN/foundation/core/error"
	mfinlog "github.com/msto63/mFIN/foundation/core/log"
	"github.com/msto63/mFIN/internal/format"
	"github.com/msto63/mFIN/internal/formulas"
	"github.com/msto63/mFIN/internal/inputs"
	"github.com/msto63/mFIN/internal/session"
	"github.com/msto63/mFIN/internal/solver"
	"github.com/msto63/mFIN/pkg/core/config"
	"github.com/msto63/mFIN/pkg/core/logging"
)

// app wires configuration, logging, the calculation registry and a session
type app struct {
	cfg       *config.Config
	logger    *mfinlog.Logger
	closer    io.Closer
	session   *session.Session
	formatter *format.Formatter
}

func newApp(opts *rootOptions) (*app, error) {
	cfg, err := loadConfig(opts.cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := logging.NewLogger(logging.LoggerConfig{
		Name:    cfg.General.Name,
		Level:   cfg.General.LogLevel,
		Format:  cfg.General.LogFormat,
		File:    cfg.General.LogFile,
		Verbose: opts.verbose,
	})
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: logger, closer: closer}
	if cfg.Path != "" {
		logger.Debug("configuration loaded", mfinlog.String("path", cfg.Path))
	}

	sc := cfg.Solver
	sv := solver.New(solver.Settings{
		NewtonTolerance:        sc.NewtonTolerance,
		NewtonMaxIterations:    sc.NewtonMaxIterations,
		DerivativeThreshold:    sc.DerivativeThreshold,
		BisectionTolerance:     sc.BisectionTolerance,
		BisectionMaxIterations: sc.BisectionMaxIterations,
		SimplexTolerance:       sc.SimplexTolerance,
		IntegralTolerance:      sc.IntegralTolerance,
		BranchMaxNodes:         sc.BranchMaxNodes,
	}, logger)

	reg, err := formulas.NewRegistry(formulas.Options{
		Logger:       logger,
		Solver:       sv,
		InitialGuess: sc.InitialGuess,
		YieldLower:   sc.BisectionLower,
		YieldUpper:   sc.BisectionUpper,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	a.session, err = session.New(session.Options{
		Registry:        reg,
		Logger:          logger,
		SuggestionLimit: cfg.Display.SuggestionLimit,
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	a.formatter = format.New(logger)

	if err := a.loadInputs(opts); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}

// loadInputs applies the scenario file first, then each --set assignment
func (a *app) loadInputs(opts *rootOptions) error {
	if opts.inputsFile != "" {
		set, err := inputs.LoadScenario(opts.inputsFile)
		if err != nil {
			return err
		}
		if err := a.session.Merge(set); err != nil {
			return err
		}
	}
	for _, assignment := range opts.assignments {
		if err := a.session.Assign(assignment); err != nil {
			return mfinerror.Wrap(err, "invalid --set "+assignment).
				WithOperation("cmd.loadInputs")
		}
	}
	return nil
}

// Close releases the log file
func (a *app) Close() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}
