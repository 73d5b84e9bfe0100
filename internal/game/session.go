package game

// File session.go holds the Session facade consumed by whatever shell hosts
// the engine. One command in, one batch of text lines out, with every world
// mutation finished before SubmitCommand returns. The session is not safe
// for concurrent use; the caller must finish one command before submitting
// the next.

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Line is one line of player-facing output. Secret lines come from commands
// declared on secret entities; a UI may give them distinct treatment.
type Line struct {
	Text   string
	Secret bool
}

// Result is the outcome of one submitted command. IsProblem classifies the
// emitted text so a UI can drive feedback effects; it is derived from the
// lines, not tracked separately.
type Result struct {
	Lines     []Line
	IsProblem bool
}

// problemPatterns match the denial and failure phrasings the engine emits.
var problemPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^unknown command`),
	regexp.MustCompile(`(?i)there's nothing matching`),
	regexp.MustCompile(`(?i)you can't`),
	regexp.MustCompile(`(?i)you don't have`),
	regexp.MustCompile(`(?i)not implemented yet`),
}

// Session runs one player's game. It owns its WorldState outright and keeps
// a pristine copy for restarts so content never needs reloading.
type Session struct {
	// ID identifies the session in diagnostics.
	ID uuid.UUID

	world    *WorldState
	pristine *WorldState
	log      *slog.Logger
}

// NewSession creates a session around the given world. The world passed in
// becomes the live state; a deep copy is kept for StartNewGame resets. A nil
// logger means slog.Default.
func NewSession(w *WorldState, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	id := uuid.New()
	return &Session{
		ID:       id,
		world:    w,
		pristine: w.Copy(),
		log:      log.With("session", id.String()),
	}
}

// World exposes the live world state, for shells and tests that need to
// inspect it. Mutating it between commands is the caller's own risk.
func (s *Session) World() *WorldState {
	return s.world
}

// StartNewGame resets the world to its content-declared defaults and returns
// the initial area's rendered description.
func (s *Session) StartNewGame() Result {
	s.world = s.pristine.Copy()
	lines := s.renderArea(s.world.CurrentArea())
	return Result{Lines: lines}
}

// ContinueGame resumes with the in-memory world unchanged, re-rendering the
// player's current surroundings.
func (s *Session) ContinueGame() Result {
	lines := s.renderArea(s.world.CurrentArea())
	return Result{Lines: lines}
}

// SubmitCommand resolves one line of raw player input against a freshly
// built catalog, dispatches the matched verb handler, and returns the text
// produced. It never returns an error: every failure mode is a message.
func (s *Session) SubmitCommand(raw string) Result {
	area := s.world.CurrentArea()
	catalog := BuildCatalog(s.world, area)
	cmd := Parse(raw, catalog, s.world, area)

	var lines []Line
	if cmd.Verb == "" {
		lines = []Line{{Text: fmt.Sprintf("Unknown command: %q. Try again.", strings.TrimSpace(raw))}}
	} else if handler, ok := verbHandlers[cmd.Verb]; ok {
		lines = handler(s, cmd, catalog, area)
	} else {
		lines = []Line{{Text: fmt.Sprintf("The %q command is not implemented yet.", cmd.Verb)}}
	}

	return Result{Lines: lines, IsProblem: classifyProblem(lines)}
}

func classifyProblem(lines []Line) bool {
	for _, ln := range lines {
		for _, pat := range problemPatterns {
			if pat.MatchString(ln.Text) {
				return true
			}
		}
	}
	return false
}
