package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ethanbaker/notes-summarizer/internal/logger"
	"github.com/ethanbaker/notes-summarizer/internal/prompts"
)

// Messages shown to the user through the Alerter
const (
	AlertGenerateFailed = "Failed to generate summary. Please try again."
	AlertEmailSent      = "Email sent successfully!"
	AlertEmailFailed    = "Failed to send email. Please try again."
)

var (
	// ErrInFlight is returned when the same action is already running
	ErrInFlight = errors.New("action already in progress")

	// ErrGenerateDisabled is returned when the transcript or prompt is blank
	ErrGenerateDisabled = errors.New("a transcript and instructions are required")

	// ErrSendDisabled is returned when the summary or recipients are blank
	ErrSendDisabled = errors.New("a summary and at least one recipient are required")

	ErrGenerateFailed = errors.New("failed to generate summary")
	ErrSendFailed     = errors.New("failed to send email")
)

// Backend performs the two remote actions of the form
type Backend interface {
	GenerateSummary(ctx context.Context, transcript, prompt string) (string, error)
	SendEmail(ctx context.Context, summary string, recipients []string, note string) (string, error)
}

// Alerter shows a blocking message to the user
type Alerter interface {
	Alert(message string)
}

// AlertFunc adapts a function to the Alerter interface
type AlertFunc func(message string)

func (f AlertFunc) Alert(message string) { f(message) }

// Workspace owns the form state. Fields are only changed through its methods,
// each of which replaces a value wholesale.
type Workspace struct {
	mu      sync.Mutex
	state   State
	backend Backend
	alerter Alerter
	log     *logger.Logger
}

// Option configures a Workspace
type Option func(*Workspace)

// WithLogger sets the logger used for failed actions
func WithLogger(log *logger.Logger) Option {
	return func(w *Workspace) { w.log = log.WithComponent("workspace") }
}

// WithPrompt sets the initial instruction prompt
func WithPrompt(prompt string) Option {
	return func(w *Workspace) { w.state.Prompt = prompt }
}

// New creates an empty workspace with the default instruction prompt
func New(backend Backend, alerter Alerter, opts ...Option) *Workspace {
	w := &Workspace{
		state: State{
			Prompt:   prompts.DefaultInstruction,
			Generate: TaskIdle,
			Share:    TaskIdle,
		},
		backend: backend,
		alerter: alerter,
		log:     logger.Nop(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// State returns a snapshot of the current state
func (w *Workspace) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// View returns the render projection of the current state
func (w *Workspace) View() View {
	return Project(w.State())
}

func (w *Workspace) update(fn func(s *State)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(&w.state)
}

func (w *Workspace) SetTranscript(text string) { w.update(func(s *State) { s.Transcript = text }) }
func (w *Workspace) SetPrompt(text string)     { w.update(func(s *State) { s.Prompt = text }) }
func (w *Workspace) SetSummary(text string)    { w.update(func(s *State) { s.Summary = text }) }
func (w *Workspace) SetRecipients(text string) { w.update(func(s *State) { s.Recipients = text }) }
func (w *Workspace) SetNote(text string)       { w.update(func(s *State) { s.Note = text }) }

// LoadTranscript reads r fully and uses it as the transcript. On a read error
// the transcript is left as it was; no alert is shown.
func (w *Workspace) LoadTranscript(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		w.log.Warn().Err(err).Msg("could not read transcript")
		return fmt.Errorf("failed to read transcript: %w", err)
	}

	w.SetTranscript(string(data))
	return nil
}

// LoadTranscriptFile loads the transcript from a local file
func (w *Workspace) LoadTranscriptFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		w.log.Warn().Err(err).Str("path", path).Msg("could not open transcript")
		return fmt.Errorf("failed to open transcript: %w", err)
	}
	defer f.Close()

	return w.LoadTranscript(f)
}

// Generate requests a summary of the current transcript. A second call while
// one is in flight returns ErrInFlight without contacting the backend.
func (w *Workspace) Generate(ctx context.Context) error {
	w.mu.Lock()
	if w.state.Generate.IsActive() {
		w.mu.Unlock()
		return ErrInFlight
	}
	if !w.state.CanGenerate() {
		w.mu.Unlock()
		return ErrGenerateDisabled
	}
	transcript, prompt := w.state.Transcript, w.state.Prompt
	w.state.Generate = TaskInFlight
	w.mu.Unlock()

	summary, err := call(func() (string, error) {
		return w.backend.GenerateSummary(ctx, transcript, prompt)
	})

	w.mu.Lock()
	if err != nil {
		w.state.Generate = TaskFailed
	} else {
		w.state.Summary = summary
		w.state.Generate = TaskSucceeded
	}
	w.mu.Unlock()

	if err != nil {
		w.log.Error().Err(err).Msg("error generating summary")
		w.alert(AlertGenerateFailed)
		return fmt.Errorf("%w: %w", ErrGenerateFailed, err)
	}

	return nil
}

// Send emails the current summary to the parsed recipients. On success the
// recipients and note are cleared; the transcript and summary are kept.
func (w *Workspace) Send(ctx context.Context) error {
	w.mu.Lock()
	if w.state.Share.IsActive() {
		w.mu.Unlock()
		return ErrInFlight
	}
	if !w.state.CanSend() {
		w.mu.Unlock()
		return ErrSendDisabled
	}
	summary, note := w.state.Summary, w.state.Note
	recipients := ParseRecipients(w.state.Recipients)
	w.state.Share = TaskInFlight
	w.mu.Unlock()

	_, err := call(func() (string, error) {
		return w.backend.SendEmail(ctx, summary, recipients, note)
	})

	w.mu.Lock()
	if err != nil {
		w.state.Share = TaskFailed
	} else {
		w.state.Share = TaskSucceeded
		w.state.Recipients = ""
		w.state.Note = ""
	}
	w.mu.Unlock()

	if err != nil {
		w.log.Error().Err(err).Int("recipients", len(recipients)).Msg("error sending email")
		w.alert(AlertEmailFailed)
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	w.alert(AlertEmailSent)
	return nil
}

func (w *Workspace) alert(message string) {
	if w.alerter != nil {
		w.alerter.Alert(message)
	}
}

// call runs fn, turning a panic into an error so task states always settle
func call(fn func() (string, error)) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

