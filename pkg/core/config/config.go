package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	mfinerror "github.com/msto63/mFIN/foundation/core/error"
	mfinlog "github.com/msto63/mFIN/foundation/core/log"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "MFIN_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Solver  SolverConfig  `toml:"solver"`
	Display DisplayConfig `toml:"display"`

	// Path is the file the configuration was read from, empty for defaults
	Path string `toml:"-"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	// LogFile receives log output instead of stderr when set
	LogFile string `toml:"log_file"`
}

// SolverConfig holds tolerances and budgets of the numerical solvers
type SolverConfig struct {
	NewtonTolerance        float64 `toml:"newton_tolerance"`
	NewtonMaxIterations    int     `toml:"newton_max_iterations"`
	DerivativeThreshold    float64 `toml:"derivative_threshold"`
	InitialGuess           float64 `toml:"initial_guess"`
	BisectionTolerance     float64 `toml:"bisection_tolerance"`
	BisectionMaxIterations int     `toml:"bisection_max_iterations"`
	BisectionLower         float64 `toml:"bisection_lower"`
	BisectionUpper         float64 `toml:"bisection_upper"`
	SimplexTolerance       float64 `toml:"simplex_tolerance"`
	IntegralTolerance      float64 `toml:"integral_tolerance"`
	BranchMaxNodes         int     `toml:"branch_max_nodes"`
}

// DisplayConfig holds result rendering settings
type DisplayConfig struct {
	SuggestionLimit int  `toml:"suggestion_limit"`
	ShowDetails     bool `toml:"show_details"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{Display: DisplayConfig{ShowDetails: true}}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mfinerror.Wrap(err, "config file not readable: "+path).
			WithCode(mfinerror.CodeFileError).
			WithOperation("config.Load")
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes TOML data, applies defaults and expands ${VAR} references
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, mfinerror.Wrap(err, "failed to parse config").
			WithCode(mfinerror.CodeConfigError).
			WithOperation("config.Parse")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, mfinerror.Newf("unknown config key %q", undecoded[0].String()).
			WithCode(mfinerror.CodeConfigError).
			WithOperation("config.Parse")
	}

	// Absent show_details means shown
	if !md.IsDefined("display", "show_details") {
		cfg.Display.ShowDetails = true
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()
	return &cfg, nil
}

// LoadFromEnv loads the file named by MFIN_CONFIG, or the first default
// location that exists. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations searched when MFIN_CONFIG is unset
func DefaultPaths() []string {
	paths := []string{"./configs/config.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mfin", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "mFIN"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Solver
	if c.Solver.NewtonTolerance == 0 {
		c.Solver.NewtonTolerance = 1.48e-8
	}
	if c.Solver.NewtonMaxIterations == 0 {
		c.Solver.NewtonMaxIterations = 50
	}
	if c.Solver.DerivativeThreshold == 0 {
		c.Solver.DerivativeThreshold = 1e-15
	}
	if c.Solver.InitialGuess == 0 {
		c.Solver.InitialGuess = 0.10
	}
	if c.Solver.BisectionTolerance == 0 {
		c.Solver.BisectionTolerance = 1e-10
	}
	if c.Solver.BisectionMaxIterations == 0 {
		c.Solver.BisectionMaxIterations = 200
	}
	if c.Solver.BisectionLower == 0 && c.Solver.BisectionUpper == 0 {
		c.Solver.BisectionLower = -0.99
		c.Solver.BisectionUpper = 1.0
	}
	if c.Solver.SimplexTolerance == 0 {
		c.Solver.SimplexTolerance = 1e-10
	}
	if c.Solver.IntegralTolerance == 0 {
		c.Solver.IntegralTolerance = 1e-9
	}
	if c.Solver.BranchMaxNodes == 0 {
		c.Solver.BranchMaxNodes = 10000
	}

	// Display
	if c.Display.SuggestionLimit == 0 {
		c.Display.SuggestionLimit = 3
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.Name = os.ExpandEnv(c.General.Name)
	c.General.LogLevel = os.ExpandEnv(c.General.LogLevel)
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
}

// Validate checks that every value is usable
func (c *Config) Validate() error {
	if _, err := mfinlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", err.Error())
	}
	if _, err := mfinlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", err.Error())
	}

	s := c.Solver
	for _, p := range []struct {
		key   string
		value float64
	}{
		{"solver.newton_tolerance", s.NewtonTolerance},
		{"solver.derivative_threshold", s.DerivativeThreshold},
		{"solver.bisection_tolerance", s.BisectionTolerance},
		{"solver.simplex_tolerance", s.SimplexTolerance},
		{"solver.integral_tolerance", s.IntegralTolerance},
	} {
		if p.value <= 0 {
			return invalid(p.key, "must be positive")
		}
	}
	for _, p := range []struct {
		key   string
		value int
	}{
		{"solver.newton_max_iterations", s.NewtonMaxIterations},
		{"solver.bisection_max_iterations", s.BisectionMaxIterations},
		{"solver.branch_max_nodes", s.BranchMaxNodes},
		{"display.suggestion_limit", c.Display.SuggestionLimit},
	} {
		if p.value <= 0 {
			return invalid(p.key, "must be positive")
		}
	}
	if s.BisectionLower <= -1 {
		return invalid("solver.bisection_lower", "must be greater than -1")
	}
	if s.BisectionLower >= s.BisectionUpper {
		return invalid("solver.bisection_upper", "must be greater than bisection_lower")
	}
	return nil
}

func invalid(key, reason string) error {
	return mfinerror.Newf("%s %s", key, reason).
		WithCode(mfinerror.CodeInvalidConfig).
		WithDetail("key", key).
		WithOperation("config.Validate")
}
