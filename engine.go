// Package gloamquest contains a CLI-driven engine for reading player
// commands and advancing a game session continuously until the user quits.
package gloamquest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/rosed"

	"gloamquest/internal/game"
	"gloamquest/internal/gqw"
	"gloamquest/internal/input"
)

const consoleOutputWidth = 80

// Engine hosts a game session on an input and an output stream: it reads a
// line, submits it to the session, and renders the resulting text batch. The
// loop is strictly one command at a time, which is what keeps the session's
// unguarded world mutation safe.
type Engine struct {
	session *game.Session
	in      input.Reader
	out     *bufio.Writer
	running bool
}

// New creates an engine ready to run the world at worldFilePath on the given
// streams. Nil streams default to stdin and stdout. When attached directly
// to the standard streams a readline-backed reader is used unless
// forceDirect disables it.
func New(inputStream io.Reader, outputStream io.Writer, worldFilePath string, forceDirect bool) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	world, err := gqw.LoadResourceBundle(worldFilePath)
	if err != nil {
		return nil, err
	}

	eng := &Engine{
		session: game.NewSession(world, nil),
		out:     bufio.NewWriter(outputStream),
	}

	useReadline := !forceDirect && inputStream == os.Stdin && outputStream == os.Stdout
	if useReadline {
		eng.in, err = input.NewInteractiveReader()
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	return eng, nil
}

// Close releases the engine's input resources. It must not be called while
// the engine is running.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running game engine")
	}
	if err := eng.in.Close(); err != nil {
		return fmt.Errorf("close command reader: %w", err)
	}
	return nil
}

// RunUntilQuit starts a new game and processes commands until the player
// quits or input runs out.
func (eng *Engine) RunUntilQuit() error {
	intro := "Welcome to GloamQuest\n"
	intro += "=====================\n\n"
	if _, err := eng.out.WriteString(intro); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}

	if err := eng.printResult(eng.session.StartNewGame()); err != nil {
		return err
	}

	eng.running = true
	defer func() {
		eng.running = false
	}()

	for eng.running {
		line, err := eng.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("get user command: %w", err)
		}

		// quitting belongs to the runner, not the game
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "quit", "exit", "bye":
			eng.running = false
			continue
		}

		if err := eng.printResult(eng.session.SubmitCommand(line)); err != nil {
			return err
		}
	}

	if _, err := eng.out.WriteString("Goodbye\n"); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	return eng.out.Flush()
}

// printResult renders one batch of session output, wrapped to the console
// width. Secret-flavored lines get a marker since a plain console has no
// subtler treatment to give them.
func (eng *Engine) printResult(res game.Result) error {
	for _, ln := range res.Lines {
		text := rosed.Edit(ln.Text).Wrap(consoleOutputWidth).String()
		if ln.Secret {
			text = "* " + text
		}
		if _, err := eng.out.WriteString(text + "\n"); err != nil {
			return fmt.Errorf("could not write output: %w", err)
		}
	}
	if _, err := eng.out.WriteString("\n"); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	return eng.out.Flush()
}
