package config

import (
	"os"

	"github.com/rs/zerolog/log"
)

// Env is everything read from the environment once at boot. Secrets live
// here; everything reloadable lives in the bot config file.
type Env struct {
	DiscordToken string
	GitHubToken  string

	ConfigPath string // bot config file, default config.yml
	DataDir    string // record store root, default data
}

func LoadEnv() Env {
	get := func(k string, req bool) string {
		v := os.Getenv(k)
		if v == "" && req {
			log.Fatal().Msgf("missing env %s", k)
		}
		return v
	}

	env := Env{
		DiscordToken: get("DISCORD_BOT_TOKEN", true),
		GitHubToken:  get("GITHUB_TOKEN", false),
		ConfigPath:   get("BOT_CONFIG_PATH", false),
		DataDir:      get("BOT_DATA_DIR", false),
	}
	if env.ConfigPath == "" {
		env.ConfigPath = "config.yml"
	}
	if env.DataDir == "" {
		env.DataDir = "data"
	}
	return env
}
