package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/enguessan/tresorerie/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// The Gemini API key usually lives in a local .env file.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env file: %v", err)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
