package game

import (
	"os"
	"strconv"
	"strings"

	"github.com/samdwyer/fogmaze/internal/world"
)

// Generator names accepted by Config.Generator.
const (
	GeneratorMaze  = "maze"
	GeneratorRooms = "rooms"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible worlds.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Rows, Cols int
	Generator  string

	// RequireReachable re-rolls worlds whose treasure the player cannot reach.
	RequireReachable bool

	Telemetry        bool
	HoneycombAPIKey  string
	HoneycombDataset string

	LogLevel  string
	LogFormat string
	LogFile   string
}

// DefaultConfig returns the classic 15x15 maze setup.
func DefaultConfig() Config {
	return Config{
		Rows:             world.DefaultRows,
		Cols:             world.DefaultCols,
		Generator:        GeneratorMaze,
		RequireReachable: true,
		HoneycombDataset: "fogmaze",
		LogLevel:         "info",
	}
}

// LoadConfig reads FOGMAZE_* and LOG_* environment variables on top of
// the defaults. Unparseable values are reported as ConfigError.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	var err error
	if cfg.Seed, err = envInt64("FOGMAZE_SEED", cfg.Seed); err != nil {
		return cfg, err
	}
	if cfg.Rows, err = envInt("FOGMAZE_ROWS", cfg.Rows); err != nil {
		return cfg, err
	}
	if cfg.Cols, err = envInt("FOGMAZE_COLS", cfg.Cols); err != nil {
		return cfg, err
	}
	if cfg.RequireReachable, err = envBool("FOGMAZE_REQUIRE_REACHABLE", cfg.RequireReachable); err != nil {
		return cfg, err
	}
	if cfg.Telemetry, err = envBool("FOGMAZE_TELEMETRY", cfg.Telemetry); err != nil {
		return cfg, err
	}

	cfg.Generator = envString("FOGMAZE_GENERATOR", cfg.Generator)
	cfg.HoneycombAPIKey = envString("HONEYCOMB_FOGMAZE_API_KEY", cfg.HoneycombAPIKey)
	cfg.HoneycombDataset = envString("HONEYCOMB_FOGMAZE_DATASET", cfg.HoneycombDataset)
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = envString("LOG_FORMAT", cfg.LogFormat)
	cfg.LogFile = envString("FOGMAZE_LOG_FILE", cfg.LogFile)

	// An API key alone is enough to turn tracing on
	if cfg.HoneycombAPIKey != "" {
		cfg.Telemetry = true
	}
	return cfg, nil
}

// Validate checks the parameters a session is built from.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return &world.ConfigError{Field: "size", Reason: "rows and cols must be positive, got " +
			strconv.Itoa(c.Rows) + "x" + strconv.Itoa(c.Cols)}
	}
	_, err := c.NewGenerator()
	return err
}

// NewGenerator returns the layout generator named by c.Generator.
func (c Config) NewGenerator() (world.Generator, error) {
	switch strings.ToLower(c.Generator) {
	case GeneratorMaze, "":
		return world.MazeGenerator{}, nil
	case GeneratorRooms:
		return world.RoomsGenerator{}, nil
	default:
		return nil, &world.ConfigError{Field: "generator", Reason: "unknown generator " + strconv.Quote(c.Generator)}
	}
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, &world.ConfigError{Field: key, Reason: err.Error()}
	}
	return n, nil
}

func envInt64(key string, def int64) (int64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def, &world.ConfigError{Field: key, Reason: err.Error()}
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, &world.ConfigError{Field: key, Reason: err.Error()}
	}
	return b, nil
}
