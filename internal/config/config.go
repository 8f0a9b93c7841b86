package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Sim SimConfig `mapstructure:"sim"`
	Log LogConfig `mapstructure:"log"`
}

type SimConfig struct {
	Hands int   `mapstructure:"hands"`
	Seed  int64 `mapstructure:"seed"`
	// persona id per seat; "random" seats a RandomBrain
	Brains   []string `mapstructure:"brains"`
	Personas string   `mapstructure:"personas"` // optional JSON persona file
	Dealer   int      `mapstructure:"dealer"`   // -1 draws it from the seed
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Load 从指定路径加载配置（路径为空时只使用默认值和 SKATSIM_* 环境变量）
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("sim.hands", 100)
	v.SetDefault("sim.seed", 1)
	v.SetDefault("sim.brains", []string{"steady", "gambler", "rock"})
	v.SetDefault("sim.personas", "")
	v.SetDefault("sim.dealer", -1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	v.SetEnvPrefix("SKATSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Sim.Hands <= 0 {
		return fmt.Errorf("sim.hands must be > 0")
	}
	if len(c.Sim.Brains) != 3 {
		return fmt.Errorf("sim.brains needs one persona per seat, got %d", len(c.Sim.Brains))
	}
	if c.Sim.Dealer < -1 || c.Sim.Dealer > 2 {
		return fmt.Errorf("sim.dealer must be -1 or a seat in [0,3): %d", c.Sim.Dealer)
	}
	return nil
}
