package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/conorfennell/pianopace/internal/pace"
)

// EnvPrefix marks environment variables read as configuration. A double
// underscore separates nesting levels: PIANOPACE_PACE__BEHIND_FLOOR sets
// pace.behind_floor.
const EnvPrefix = "PIANOPACE_"

type Config struct {
	DB         string     `koanf:"db" validate:"required"`
	Addr       string     `koanf:"addr" validate:"required,hostname_port"`
	Log        string     `koanf:"log" validate:"oneof=dev development prod production"`
	Curriculum Curriculum `koanf:"curriculum"`
	Pace       Pace       `koanf:"pace"`
	Server     Server     `koanf:"server"`
}

// Curriculum locates an optional content pack overlaid on the built-in weeks.
type Curriculum struct {
	Dir      string `koanf:"dir"`
	Git      string `koanf:"git"`
	CacheDir string `koanf:"cache_dir" validate:"required_with=Git"`
}

type Pace struct {
	AheadThreshold int     `koanf:"ahead_threshold" validate:"gt=0"`
	OnTrackFloor   int     `koanf:"on_track_floor" validate:"ltfield=AheadThreshold"`
	BehindFloor    int     `koanf:"behind_floor" validate:"ltfield=OnTrackFloor"`
	MaxDaysPerWeek float64 `koanf:"max_days_per_week" validate:"gt=0"`
}

type Server struct {
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gt=0"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	p := pace.DefaultParams()
	return Config{
		DB:   "pianopace.db",
		Addr: "localhost:8080",
		Log:  "dev",
		Curriculum: Curriculum{
			CacheDir: ".pianopace/packs",
		},
		Pace: Pace{
			AheadThreshold: p.AheadThreshold,
			OnTrackFloor:   p.OnTrackFloor,
			BehindFloor:    p.BehindFloor,
			MaxDaysPerWeek: p.MaxDaysPerWeek,
		},
		Server: Server{
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}
}

// RegisterFlags adds the persistent flags to fs, defaulted from Default so
// an unset flag never masks a file or environment value.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("config", "", "path to a YAML config file")
	fs.String("db", d.DB, "path to the SQLite database file")
	fs.String("log", d.Log, "log mode: dev or prod")
	fs.String("curriculum.dir", d.Curriculum.Dir, "directory of week YAML files overlaid on the built-in curriculum")
	fs.String("curriculum.git", d.Curriculum.Git, "git URL of a content pack; curriculum.dir is read inside the checkout")
}

// Load layers defaults, the YAML file at path (if any), PIANOPACE_
// environment variables and changed flags, in that order of precedence.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if fs != nil {
		if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromEnv loads the config file named by PIANOPACE_CONFIG, if set, plus
// the environment. It is meant for tools that have no flags.
func FromEnv() (*Config, error) {
	return Load(os.Getenv(EnvPrefix+"CONFIG"), nil)
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// PaceParams converts the pace section into model parameters.
func (c *Config) PaceParams() *pace.Params {
	return &pace.Params{
		AheadThreshold: c.Pace.AheadThreshold,
		OnTrackFloor:   c.Pace.OnTrackFloor,
		BehindFloor:    c.Pace.BehindFloor,
		MaxDaysPerWeek: c.Pace.MaxDaysPerWeek,
	}
}
