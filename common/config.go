package common

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type LogConfig struct {
	Level  string `yaml:"level"  env:"GOHAN_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"GOHAN_LOG_FORMAT" env-default:"text"`
}

// Config holds every pipeline and server setting. Priority:
// CLI flags > environment > YAML file > defaults.
type Config struct {
	// DataDir contains one hsk<level>.json per level.
	DataDir string `yaml:"data_dir" env:"GOHAN_DATA_DIR" env-default:"data/hsk"`

	// VaultDir is the output note directory.
	VaultDir string `yaml:"vault_dir" env:"GOHAN_VAULT_DIR" env-default:"vault"`

	// GOBPath is the precompiled word list used by gohanweb,
	// produced by cmd/gob.
	GOBPath string `yaml:"gob_path" env:"GOHAN_GOB" env-default:"data/words.gob"`

	// Levels selects dataset levels: "2-4", "1,3,5" or "6".
	// Empty means all.
	Levels string `yaml:"levels" env:"GOHAN_LEVELS"`

	// Form picks the active written form: simplified or traditional.
	Form string `yaml:"form" env:"GOHAN_FORM" env-default:"simplified"`

	Addr string `yaml:"addr" env:"GOHAN_ADDR" env-default:":8080"`

	// FontPath points at a CJK-capable TTF/OTF for word images.
	// Empty disables image rendering in gohanweb.
	FontPath string `yaml:"font_path" env:"GOHAN_FONT"`

	// CacheDir defaults to <user cache dir>/gohan.
	CacheDir string `yaml:"cache_dir" env:"GOHAN_CACHE_DIR"`

	Log LogConfig `yaml:"log"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	return &cfg, nil
}
