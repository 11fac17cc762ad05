package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/ethanbaker/notes-summarizer/internal/config"
	"github.com/ethanbaker/notes-summarizer/internal/logger"
	"github.com/ethanbaker/notes-summarizer/internal/workspace"
	"github.com/ethanbaker/notes-summarizer/pkg/sdk"
)

const help = `Commands:
  load <path>        read a transcript file
  paste              type a transcript, end with a line containing only "."
  prompt <text>      set the summary instructions
  presets            list suggested instructions
  preset <n>         use suggested instruction n
  generate           generate the summary
  edit               retype the summary, end with a line containing only "."
  recipients <list>  comma-separated email addresses
  note <text>        optional message above the summary
  send               email the summary
  show               print the form
  help               print this help
  exit               quit`

// session is the interactive terminal frontend of a workspace
type session struct {
	ws      *workspace.Workspace
	client  *sdk.Client
	in      *bufio.Scanner
	out     io.Writer
	presets []string
}

func main() {
	// Load global config
	cfg, cfgErr := config.Load(config.EnvFile())

	log := logger.New(cfg.Log.Level, "console")
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("some configuration files were skipped")
	}

	client := sdk.NewClient(cfg.Client.APIURL)

	s := &session{
		client: client,
		in:     bufio.NewScanner(os.Stdin),
		out:    os.Stdout,
	}
	s.in.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	s.ws = workspace.New(client, workspace.AlertFunc(func(message string) {
		fmt.Fprintf(s.out, "\n*** %s ***\n", message)
	}), workspace.WithLogger(log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := s.run(ctx); err != nil {
		log.Fatal().Err(err).Msg("command line session failed")
	}
}

// run reads commands until exit or end of input
func (s *session) run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Meeting Notes Summarizer. Type 'help' for commands, 'exit' to quit.")
	s.show()

	for {
		fmt.Fprint(s.out, "\n> ")

		if !s.in.Scan() {
			break
		}

		input := strings.TrimSpace(s.in.Text())
		if input == "" {
			continue
		}
		if input == "exit" {
			break
		}

		cmd, arg, _ := strings.Cut(input, " ")
		if err := s.exec(ctx, cmd, strings.TrimSpace(arg)); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}

		if ctx.Err() != nil {
			break
		}
	}

	if err := s.in.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	return nil
}

func (s *session) exec(ctx context.Context, cmd, arg string) error {
	switch cmd {
	case "load":
		if arg == "" {
			return errors.New("usage: load <path>")
		}
		if err := s.ws.LoadTranscriptFile(arg); err != nil {
			return err
		}
		s.show()

	case "paste":
		s.ws.SetTranscript(s.readBlock())
		s.show()

	case "prompt":
		s.ws.SetPrompt(arg)
		s.show()

	case "presets":
		return s.listPresets(ctx)

	case "preset":
		var n int
		if _, err := fmt.Sscanf(arg, "%d", &n); err != nil || n < 1 || n > len(s.presets) {
			return errors.New("unknown preset, run 'presets' first")
		}
		s.ws.SetPrompt(s.presets[n-1])
		s.show()

	case "generate":
		fmt.Fprintln(s.out, "Generating summary...")
		if err := s.ws.Generate(ctx); err != nil {
			if errors.Is(err, workspace.ErrGenerateFailed) {
				return nil
			}
			return err
		}
		s.show()

	case "edit":
		s.ws.SetSummary(s.readBlock())
		s.show()

	case "recipients":
		s.ws.SetRecipients(arg)
		s.show()

	case "note":
		s.ws.SetNote(arg)

	case "send":
		fmt.Fprintln(s.out, "Sending email...")
		if err := s.ws.Send(ctx); err != nil && !errors.Is(err, workspace.ErrSendFailed) {
			return err
		}

	case "show":
		s.show()

	case "help":
		fmt.Fprintln(s.out, help)

	default:
		return fmt.Errorf("unknown command %q, type 'help'", cmd)
	}

	return nil
}

// readBlock reads lines until a single "." or end of input
func (s *session) readBlock() string {
	fmt.Fprintln(s.out, `(end with a line containing only ".")`)

	var lines []string
	for s.in.Scan() {
		line := s.in.Text()
		if line == "." {
			break
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func (s *session) listPresets(ctx context.Context) error {
	res, err := s.client.GetPrompts(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch presets: %w", err)
	}

	s.presets = res.Presets
	for i, p := range s.presets {
		marker := " "
		if p == res.Default {
			marker = "*"
		}
		fmt.Fprintf(s.out, "%s %d. %s\n", marker, i+1, p)
	}

	return nil
}

// show renders the form from the workspace view
func (s *session) show() {
	state := s.ws.State()
	view := s.ws.View()

	fmt.Fprintf(s.out, "\n[1] Transcript: %s\n", preview(state.Transcript))
	if view.Current < workspace.StepInstruct {
		return
	}

	fmt.Fprintf(s.out, "[2] Instructions: %s\n", state.Prompt)

	generate := "not ready"
	if view.GenerateEnabled {
		generate = "ready, type 'generate'"
	} else if state.Generate.IsActive() {
		generate = view.GenerateLabel
	}
	fmt.Fprintf(s.out, "[3] %s\n", generate)

	if !view.ShowSummary {
		return
	}

	fmt.Fprintf(s.out, "[4] Summary:\n%s\n\n", state.Summary)
	fmt.Fprintf(s.out, "    Recipients: %s\n", state.Recipients)
	if state.Note != "" {
		fmt.Fprintf(s.out, "    Note: %s\n", state.Note)
	}
	if view.SendEnabled {
		fmt.Fprintln(s.out, "    ready, type 'send'")
	}
}

func preview(text string) string {
	if text == "" {
		return "(none, use 'load' or 'paste')"
	}

	const limit = 200
	if r := []rune(text); len(r) > limit {
		return fmt.Sprintf("%q... (%d characters)", string(r[:limit]), len(r))
	}
	return fmt.Sprintf("%q", text)
}
