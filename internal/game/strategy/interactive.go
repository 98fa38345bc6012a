package strategy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/rpsls/internal/game/core"
)

const (
	DefaultQuitKeyword = "quit"
	DefaultPrompt      = promptHead + DefaultQuitKeyword + promptTail

	promptHead = "(Type '"
	promptTail = "' to quit the game)Rock, paper, scissors, lizard, spock? > "

	// maxLineLength bounds what is kept of a console line; longer lines are
	// read to the end and rejected
	maxLineLength = 1024
)

// PromptFor returns the default prompt advertising keyword as the way out
func PromptFor(keyword string) string {
	return promptHead + keyword + promptTail
}

// Interactive reads moves from a console. It is the only strategy that
// can end the game.
type Interactive struct {
	reader    *bufio.Reader
	out       io.Writer
	prompt    string
	quit      string
	quitLabel string
	logger    zerolog.Logger
}

// InteractiveOption configures an Interactive strategy
type InteractiveOption func(*Interactive)

func WithPrompt(prompt string) InteractiveOption {
	return func(i *Interactive) {
		i.prompt = prompt
	}
}

// WithQuitKeyword changes the quit keyword. Unless WithPrompt is also
// given, the prompt names the new keyword.
func WithQuitKeyword(keyword string) InteractiveOption {
	return func(i *Interactive) {
		i.quit = core.Fold(keyword)
		i.quitLabel = strings.TrimSpace(keyword)
	}
}

func WithLogger(logger zerolog.Logger) InteractiveOption {
	return func(i *Interactive) {
		i.logger = logger
	}
}

func NewInteractive(in io.Reader, out io.Writer, opts ...InteractiveOption) *Interactive {
	i := &Interactive{
		reader:    bufio.NewReader(in),
		out:       out,
		quit:      DefaultQuitKeyword,
		quitLabel: DefaultQuitKeyword,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.prompt == "" {
		i.prompt = PromptFor(i.quitLabel)
	}
	i.logger = i.logger.With().Str("component", "interactive_strategy").Logger()
	return i
}

func (i *Interactive) Name() string {
	return string(KindHuman)
}

// SelectMove prompts until a move name or the quit keyword is entered.
// End of input counts as quitting.
func (i *Interactive) SelectMove() (core.Move, error) {
	for {
		if _, err := fmt.Fprint(i.out, i.prompt); err != nil {
			return core.MoveNone, fmt.Errorf("write prompt: %w", err)
		}

		line, tooLong, err := i.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				i.logger.Debug().Msg("Console input closed, treating as quit")
				return core.MoveNone, core.ErrQuit
			}
			return core.MoveNone, fmt.Errorf("read move: %w", err)
		}
		if tooLong {
			i.logger.Debug().Int("max_length", maxLineLength).Msg("Input line too long, prompting again")
			continue
		}

		if core.Fold(line) == i.quit {
			return core.MoveNone, core.ErrQuit
		}

		m, err := core.ParseMove(line)
		if err != nil {
			i.logger.Debug().Str("input", line).Msg("Unrecognized move, prompting again")
			continue
		}
		return m, nil
	}
}

func (i *Interactive) Observe(own, opponent core.Move) {}

// readLine returns the next line without its line ending. A line longer
// than maxLineLength is consumed in full and reported as too long.
func (i *Interactive) readLine() (string, bool, error) {
	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := i.reader.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > maxLineLength {
				tooLong = true
				line = nil
			}
		}
		if !isPrefix {
			return string(line), tooLong, nil
		}
	}
}
