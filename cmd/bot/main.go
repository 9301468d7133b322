package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/app"
	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/config"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	env := config.LoadEnv()

	ctx, err := config.LoadContext(env)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	bot, err := app.New(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("build bot")
	}

	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("start bot")
	}
	defer bot.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop
	log.Info().Msg("shutting down")
}
