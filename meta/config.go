package meta

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the tunable values shared by the commands.
type Config struct {
	Episodes        int
	TrainingEpsilon float64
	Alpha           float64
	Gamma           float64
	DefaultQ        float64
	Seed            uint64
	LogEvery        int
	EvalGames       int
	Window          int
	LogLevel        string
}

func Default() Config {
	return Config{
		Episodes:        TRAINING_IT,
		TrainingEpsilon: TRAINING_EPSILON,
		Alpha:           ALPHA,
		Gamma:           GAMMA,
		DefaultQ:        DEFAULT_Q,
		LogEvery:        LOG_EVERY,
		EvalGames:       EVAL_GAMES,
		Window:          ROLLING_WINDOW,
		LogLevel:        "info",
	}
}

// Load reads the optional env files (".env" when none are given), then applies
// TTT_* environment variables on top of the defaults.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv applies the variables found by lookup to the defaults.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var errs []error
	setInt := func(name string, dst *int) {
		if v, ok := lookup(name); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				return
			}
			*dst = n
		}
	}
	setFloat := func(name string, dst *float64) {
		if v, ok := lookup(name); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				return
			}
			*dst = f
		}
	}

	setInt("TTT_EPISODES", &cfg.Episodes)
	setFloat("TTT_EPSILON", &cfg.TrainingEpsilon)
	setFloat("TTT_ALPHA", &cfg.Alpha)
	setFloat("TTT_GAMMA", &cfg.Gamma)
	setFloat("TTT_DEFAULT_Q", &cfg.DefaultQ)
	setInt("TTT_LOG_EVERY", &cfg.LogEvery)
	setInt("TTT_EVAL_GAMES", &cfg.EvalGames)
	setInt("TTT_WINDOW", &cfg.Window)
	if v, ok := lookup("TTT_SEED"); ok {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("TTT_SEED: %w", err))
		} else {
			cfg.Seed = seed
		}
	}
	if v, ok := lookup("TTT_LOG_LEVEL"); ok {
		cfg.LogLevel = strings.TrimSpace(v)
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks that the hyperparameters are in range.
func (c Config) Validate() error {
	switch {
	case c.Episodes < 0:
		return fmt.Errorf("episodes must not be negative, got %d", c.Episodes)
	case c.TrainingEpsilon < 0 || c.TrainingEpsilon > 1:
		return fmt.Errorf("epsilon must be in [0, 1], got %v", c.TrainingEpsilon)
	case c.Alpha <= 0 || c.Alpha > 1:
		return fmt.Errorf("alpha must be in (0, 1], got %v", c.Alpha)
	case c.Gamma < 0 || c.Gamma > 1:
		return fmt.Errorf("gamma must be in [0, 1], got %v", c.Gamma)
	case c.Window <= 0:
		return fmt.Errorf("window must be positive, got %d", c.Window)
	}
	return nil
}
