package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"reversi/internal/config"
	"reversi/internal/shell"
)

func main() {
	config.SetLogLevel()

	cfg, err := config.LoadShellConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	sh := shell.New(os.Stdin, os.Stdout, cfg)
	if err := sh.Run(); err != nil {
		log.Fatal().Err(err).Msg("shell failed")
	}
}
