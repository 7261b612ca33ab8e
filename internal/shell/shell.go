// Package shell is the interactive front end. Its Run loop is the only
// goroutine that touches the model: typed lines and WhatsApp replies are both
// funnelled into it.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"wedding-planner/internal/commands"
	"wedding-planner/internal/handler"
	"wedding-planner/internal/logic"
	"wedding-planner/internal/planner"
)

const prompt = "> "

type Shell struct {
	logic   *logic.Manager
	in      io.Reader
	out     io.Writer
	replies <-chan handler.Reply
	view    planner.View
	log     zerolog.Logger
}

// New builds a shell reading commands from in. replies may be nil when
// WhatsApp is disabled.
func New(l *logic.Manager, in io.Reader, out io.Writer, replies <-chan handler.Reply, log zerolog.Logger) *Shell {
	s := &Shell{
		logic:   l,
		in:      in,
		out:     out,
		replies: replies,
		view:    l.Model().View(),
		log: log.With().
			Str("component", "shell").
			Str("session", uuid.NewString()).
			Logger(),
	}
	l.Model().Subscribe(func(v planner.View) { s.view = v })
	return s
}

// Run reads and executes commands until exit, end of input or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			s.log.Error().Err(err).Msg("Failed to read input")
		}
	}()

	s.log.Info().Msg("Session started")
	fmt.Fprintln(s.out, "💍 Wedding Planner. Type 'help' for the list of commands.")
	fmt.Fprint(s.out, prompt)

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if strings.TrimSpace(line) == "" {
				fmt.Fprint(s.out, prompt)
				continue
			}
			if s.handleLine(ctx, line) {
				return nil
			}
			fmt.Fprint(s.out, prompt)
		case r := <-s.replies:
			s.handleReply(ctx, r)
		}
	}
}

// handleLine reports whether the shell should exit.
func (s *Shell) handleLine(ctx context.Context, line string) bool {
	res, err := s.logic.Execute(ctx, line)
	if res.Feedback != "" {
		fmt.Fprintln(s.out, res.Feedback)
	}
	if err != nil {
		fmt.Fprintln(s.out, err.Error())
	}
	s.render(res.Display)
	return res.Exit
}

func (s *Shell) handleReply(ctx context.Context, r handler.Reply) {
	p, err := s.logic.ApplyRsvpReply(ctx, r.Phone, r.Status)
	if err != nil {
		s.log.Warn().Err(err).Str("phone", r.Phone).Msg("Could not apply RSVP reply")
		return
	}
	fmt.Fprintf(s.out, "\n📩 %s replied %s\n%s", p.Name, p.Rsvp, prompt)
}

func (s *Shell) render(d commands.Display) {
	if d == commands.DisplayPersons || d == commands.DisplayAll {
		if len(s.view.Persons) == 0 {
			fmt.Fprintln(s.out, "No persons to show.")
		}
		for i, p := range s.view.Persons {
			fmt.Fprintf(s.out, "%d. %s\n", i+1, p)
		}
	}
	if d == commands.DisplayTables || d == commands.DisplayAll {
		if len(s.view.Tables) == 0 {
			fmt.Fprintln(s.out, "No tables to show.")
		}
		for _, t := range s.view.Tables {
			fmt.Fprintln(s.out, t)
		}
	}
}
