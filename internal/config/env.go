package config

import (
	"os"
	"strconv"
)

// ApplyEnv overrides config fields from environment variables. Unset or
// malformed variables leave the existing value in place.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("NOTEFLOW_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("NOTEFLOW_DATA_DIR"); v != "" {
		c.Server.DataDir = v
	}
	if v := os.Getenv("NOTEFLOW_STATIC_DIR"); v != "" {
		c.Server.StaticDir = v
	}
	if v := os.Getenv("NOTEFLOW_STATE_PATH"); v != "" {
		c.Gamify.StatePath = v
	}
	if v := getEnvInt("NOTEFLOW_LOGIN_BONUS_FIRST"); v > 0 {
		c.Gamify.LoginBonus.First = v
	}
	if v := getEnvInt("NOTEFLOW_LOGIN_BONUS_CONSECUTIVE"); v > 0 {
		c.Gamify.LoginBonus.Consecutive = v
	}
	if v := getEnvInt("NOTEFLOW_MAX_FOCUSED"); v > 0 {
		c.Tasks.MaxFocused = v
	}
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
