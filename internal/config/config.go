package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	ModePlay = "play"
	ModeDemo = "demo"
)

var (
	ErrInvalidMark     = errors.New("human mark must be X or O")
	ErrInvalidMode     = errors.New("mode must be play or demo")
	ErrInvalidLogLevel = errors.New("log level must be debug or info")
)

type Config struct {
	LogLevel      string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HumanMark     string        `yaml:"human-mark" env:"HUMAN_MARK" env-default:"X"`
	ComputerFirst bool          `yaml:"computer-first" env:"COMPUTER_FIRST" env-default:"false"`
	Mode          string        `yaml:"mode" env:"MODE" env-default:"play"`
	DemoDelay     time.Duration `yaml:"demo-delay" env:"DEMO_DELAY" env-default:"500ms"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	if !that.Human().IsPlayer() {
		return fmt.Errorf("%w: got %q", ErrInvalidMark, that.HumanMark)
	}

	switch that.Mode {
	case ModePlay, ModeDemo:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidMode, that.Mode)
	}

	switch that.LogLevel {
	case "debug", "info":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, that.LogLevel)
	}

	return nil
}

func (that *Config) Human() entity.Mark {
	return entity.Mark(that.HumanMark)
}

func (that *Config) Computer() entity.Mark {
	return that.Human().Opponent()
}
