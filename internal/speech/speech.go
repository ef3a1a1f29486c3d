// Package speech reads quiz text aloud through an external
// text-to-speech program.
package speech

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Speaker reads text aloud. Speak returns immediately and never
// reports failure.
type Speaker interface {
	Speak(text, lang string)
}

// Nop is a Speaker that stays silent.
type Nop struct{}

func (Nop) Speak(string, string) {}

// EnvCommand names the variable holding the TTS command line.
const EnvCommand = "VERBS_TTS_COMMAND"

// DefaultTimeout bounds one utterance.
const DefaultTimeout = 10 * time.Second

// Placeholders expanded in Command arguments.
const (
	PlaceholderText  = "{text}"
	PlaceholderLang  = "{lang}"
	PlaceholderVoice = "{voice}"
)

type runFunc func(ctx context.Context, name string, args ...string) error

// Command speaks by running an external program such as espeak-ng or
// say. Args may contain {text}, {lang} (a BCP 47 tag such as "es-ES")
// and {voice} (its lowercase language subtag, "es"). When no argument
// mentions {text}, the text is appended as the last argument.
type Command struct {
	Name    string
	Args    []string
	Timeout time.Duration

	run runFunc
}

// ParseCommand splits a command line on whitespace.
//
//	espeak-ng -v {voice}
//	say
func ParseCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errors.New("empty TTS command")
	}
	return &Command{
		Name:    fields[0],
		Args:    fields[1:],
		Timeout: DefaultTimeout,
		run:     runCommand,
	}, nil
}

// FromEnv returns a Command built from VERBS_TTS_COMMAND, or Nop when
// it is unset.
func FromEnv() (Speaker, error) {
	line := strings.TrimSpace(os.Getenv(EnvCommand))
	if line == "" {
		return Nop{}, nil
	}
	c, err := ParseCommand(line)
	if err != nil {
		return Nop{}, err
	}
	if _, err := exec.LookPath(c.Name); err != nil {
		return Nop{}, err
	}
	return c, nil
}

// Speak starts the program in the background.
func (c *Command) Speak(text, lang string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	args := c.expand(text, lang)
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	run := c.run
	if run == nil {
		run = runCommand
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_ = run(ctx, c.Name, args...)
	}()
}

func (c *Command) expand(text, lang string) []string {
	voice, _, _ := strings.Cut(lang, "-")
	voice = strings.ToLower(voice)
	r := strings.NewReplacer(
		PlaceholderText, text,
		PlaceholderLang, lang,
		PlaceholderVoice, voice,
	)

	args := make([]string, 0, len(c.Args)+1)
	hasText := false
	for _, a := range c.Args {
		if strings.Contains(a, PlaceholderText) {
			hasText = true
		}
		args = append(args, r.Replace(a))
	}
	if !hasText {
		args = append(args, text)
	}
	return args
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}
