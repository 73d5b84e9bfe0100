/*
Gqi starts an interactive GloamQuest engine session.

It reads in a world content file, starts the game in the declared starting
area, and then reads player commands from stdin until input ends or the
player types "quit".

Usage:

	gqi [flags]

The flags are:

	--version
		Give the current version of GloamQuest and then exit.

	-w/--world [FILE]
		Use the provided world data or manifest file. Defaults to the
		GLOAMQUEST_WORLD environment variable (a .env file in the working
		directory is honored), then to "world.json".

	-d/--direct
		Force reading directly from the console instead of using readline
		based routines, even when launched in a TTY.
*/
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"gloamquest"
	"gloamquest/internal/gqerrors"
	"gloamquest/internal/version"
)

const (

	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitGameError indicates an unsuccessful program execution due to a
	// problem during the game.
	ExitGameError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the engine.
	ExitInitError
)

var (
	flagVersion = pflag.Bool("version", false, "Gives the version info")
	flagWorld   = pflag.StringP("world", "w", "", "the world data or manifest file that contains the definition of the world")
	flagDirect  = pflag.BoolP("direct", "d", false, "force reading directly from stdin instead of going through readline where possible")
)

func main() {
	returnCode := ExitSuccess
	defer func() {
		os.Exit(returnCode)
	}()

	// a missing .env is fine; flags and defaults still apply
	_ = godotenv.Load()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	worldFile := *flagWorld
	if worldFile == "" {
		worldFile = os.Getenv("GLOAMQUEST_WORLD")
	}
	if worldFile == "" {
		worldFile = "world.json"
	}

	gameEng, initErr := gloamquest.New(os.Stdin, os.Stdout, worldFile, *flagDirect)
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", gqerrors.HumanMessage(initErr))
		returnCode = ExitInitError
		return
	}

	if err := gameEng.RunUntilQuit(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGameError
		return
	}

	if err := gameEng.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGameError
	}
}
