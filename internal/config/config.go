package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrInvalidMode = errors.New("invalid render mode")

const (
	// ModeDynamic renders through a ux.Screen of wrapped components.
	ModeDynamic = "dynamic"
	// ModeTyped renders through a ux.TypedScreen of a single widget kind.
	ModeTyped = "typed"
	// ModeBoth renders the layout through both collections.
	ModeBoth = "both"
)

var Modes = []string{ModeDynamic, ModeTyped, ModeBoth}

// Config holds the settings of a drawkit run.
type Config struct {
	Mode   string
	Layout string
	Title  string
}

// Load reads configuration from flags, env and an optional config file.
// Env var overrides use prefix DRAWKIT_; DRAWKIT_CONFIG points at the file.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("mode", ModeBoth)
	v.SetDefault("layout", "")
	v.SetDefault("title", "")

	if cfgPath := os.Getenv("DRAWKIT_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("DRAWKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	c.Mode = strings.ToLower(c.Mode)
	if !slices.Contains(Modes, c.Mode) {
		return Config{}, fmt.Errorf("%w: '%s', expected one of %s", ErrInvalidMode, c.Mode, strings.Join(Modes, ", "))
	}

	return c, nil
}
