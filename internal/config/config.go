// Package config loads the NoteFlow configuration from YAML with environment
// overrides. Balance numbers for the gamification engine live here so they can
// be tuned without a rebuild.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version string       `yaml:"version" json:"version"`
	Server  ServerConfig `yaml:"server" json:"server"`
	Gamify  GamifyConfig `yaml:"gamification" json:"gamification"`
	Tasks   TasksConfig  `yaml:"tasks" json:"tasks"`
}

type ServerConfig struct {
	Addr      string `yaml:"addr" json:"addr"`
	DataDir   string `yaml:"data_dir" json:"data_dir"`
	StaticDir string `yaml:"static_dir" json:"static_dir"`
}

type GamifyConfig struct {
	LoginBonus LoginBonusConfig `yaml:"login_bonus" json:"login_bonus"`
	StatePath  string           `yaml:"state_path" json:"state_path"`
}

type LoginBonusConfig struct {
	First       int `yaml:"first" json:"first"`
	Consecutive int `yaml:"consecutive" json:"consecutive"`
}

type TasksConfig struct {
	MaxFocused int `yaml:"max_focused" json:"max_focused"`
}

func (c *Config) ApplyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.DataDir == "" {
		c.Server.DataDir = "data"
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = "static"
	}
	if c.Gamify.LoginBonus.First <= 0 {
		c.Gamify.LoginBonus.First = 25
	}
	if c.Gamify.LoginBonus.Consecutive <= 0 {
		c.Gamify.LoginBonus.Consecutive = 50
	}
	if c.Gamify.StatePath == "" {
		c.Gamify.StatePath = "data/state.db"
	}
	if c.Tasks.MaxFocused <= 0 {
		c.Tasks.MaxFocused = 3
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// Load reads a YAML config file. A missing file yields the defaults rather
// than an error; a malformed file is reported.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}
