package config

import (
	"os"

	"github.com/uno-online/server/consts"
	"gopkg.in/yaml.v3"
)

// Config is the server's startup configuration. Every field has a usable
// zero-config default; the YAML file only overrides.
type Config struct {
	TCPAddr     string `yaml:"tcp_addr"`
	WSAddr      string `yaml:"ws_addr"`
	TargetScore int    `yaml:"target_score"`
	HandSize    int    `yaml:"hand_size"`
	BotStrategy string `yaml:"bot_strategy"`
	OpenAI      struct {
		Model string `yaml:"model"`
	} `yaml:"openai"`
}

func Default() Config {
	cfg := Config{
		TCPAddr:     ":9999",
		WSAddr:      ":9998",
		TargetScore: consts.DefaultTargetScore,
		HandSize:    consts.InitialHandSize,
		BotStrategy: "greedy",
	}
	cfg.OpenAI.Model = "gpt-4o-mini"
	return cfg
}

// Load reads the YAML file at path on top of the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
