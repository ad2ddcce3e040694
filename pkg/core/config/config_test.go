package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	mfinerror "github.com/msto63/mFIN/foundation/core/error"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.Name != "mFIN" {
		t.Errorf("General.Name = %v, want mFIN", cfg.General.Name)
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.Solver.NewtonMaxIterations != 50 {
		t.Errorf("Solver.NewtonMaxIterations = %v, want 50", cfg.Solver.NewtonMaxIterations)
	}
	if cfg.Solver.BisectionLower != -0.99 || cfg.Solver.BisectionUpper != 1.0 {
		t.Errorf("bisection bracket = [%v, %v], want [-0.99, 1]", cfg.Solver.BisectionLower, cfg.Solver.BisectionUpper)
	}
	if cfg.Solver.BranchMaxNodes != 10000 {
		t.Errorf("Solver.BranchMaxNodes = %v, want 10000", cfg.Solver.BranchMaxNodes)
	}
	if !cfg.Display.ShowDetails || cfg.Display.SuggestionLimit != 3 {
		t.Errorf("Display = %+v", cfg.Display)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty", cfg.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestParse(t *testing.T) {
	t.Setenv("MFIN_TEST_LEVEL", "debug")

	cfg, err := Parse([]byte(`
[general]
name = "desk"
log_level = "${MFIN_TEST_LEVEL}"
log_format = "json"

[solver]
newton_max_iterations = 80
initial_guess = 0.05
bisection_lower = -0.5
bisection_upper = 2.0

[display]
show_details = false
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.General.Name != "desk" || cfg.General.LogFormat != "json" {
		t.Errorf("General = %+v", cfg.General)
	}
	if cfg.General.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want the expanded variable", cfg.General.LogLevel)
	}
	if cfg.Solver.NewtonMaxIterations != 80 || cfg.Solver.InitialGuess != 0.05 {
		t.Errorf("Solver = %+v", cfg.Solver)
	}
	if cfg.Solver.BisectionLower != -0.5 || cfg.Solver.BisectionUpper != 2.0 {
		t.Errorf("bisection bracket = [%v, %v]", cfg.Solver.BisectionLower, cfg.Solver.BisectionUpper)
	}
	// Unset values keep their defaults
	if cfg.Solver.NewtonTolerance != 1.48e-8 {
		t.Errorf("NewtonTolerance = %v, want default", cfg.Solver.NewtonTolerance)
	}
	if cfg.Display.ShowDetails {
		t.Error("ShowDetails = true, want false as configured")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[general\nname = 1"},
		{"wrong type", "[solver]\nnewton_max_iterations = \"many\""},
		{"unknown key", "[solver]\nnewton_steps = 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !mfinerror.HasCode(err, mfinerror.CodeConfigError) {
				t.Errorf("Parse() error = %v, want CONFIG_ERROR", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		key    string
	}{
		{"log level", func(c *Config) { c.General.LogLevel = "loud" }, "general.log_level"},
		{"log format", func(c *Config) { c.General.LogFormat = "xml" }, "general.log_format"},
		{"tolerance", func(c *Config) { c.Solver.NewtonTolerance = -1 }, "solver.newton_tolerance"},
		{"node budget", func(c *Config) { c.Solver.BranchMaxNodes = -5 }, "solver.branch_max_nodes"},
		{"lower bound", func(c *Config) { c.Solver.BisectionLower = -1 }, "solver.bisection_lower"},
		{"empty bracket", func(c *Config) { c.Solver.BisectionUpper = -0.99 }, "solver.bisection_upper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if !mfinerror.HasCode(err, mfinerror.CodeInvalidConfig) {
				t.Fatalf("Validate() error = %v, want INVALID_CONFIG", err)
			}
			var e *mfinerror.Error
			if !errors.As(err, &e) {
				t.Fatalf("error %T is not a coded error", err)
			}
			if key, _ := e.Detail("key"); key != tt.key {
				t.Errorf("key = %v, want %v", key, tt.key)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[display]\nsuggestion_limit = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Path != path || cfg.Display.SuggestionLimit != 5 {
		t.Errorf("Load() = %+v", cfg)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !mfinerror.HasCode(err, mfinerror.CodeFileError) {
		t.Errorf("Load(missing) error = %v, want FILE_ERROR", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mfin.toml")
	if err := os.WriteFile(path, []byte("[general]\nname = \"from env\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvConfigPath, path)
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "from env" {
		t.Errorf("General.Name = %q", cfg.General.Name)
	}

	// No variable and no default file: built-in defaults
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", dir)
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err = LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Path != "" || cfg.General.Name != "mFIN" {
		t.Errorf("LoadFromEnv() = %+v, want defaults", cfg)
	}
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "..", "configs", "config.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	want := Default()
	if cfg.General != want.General || cfg.Solver != want.Solver || cfg.Display != want.Display {
		t.Errorf("shipped config = %+v, want defaults %+v", cfg, want)
	}
}
