package workspace

import (
	"context"
	"sync"
)

// fakeBackend records calls. When block is set, calls wait on it before
// returning so tests can observe in-flight states.
type fakeBackend struct {
	mu sync.Mutex

	generateCalls []generateCall
	sendCalls     []sendCall

	summary     string
	generateErr error
	sendErr     error
	panicMsg    string

	started chan struct{}
	block   chan struct{}
}

type generateCall struct{ transcript, prompt string }

type sendCall struct {
	summary    string
	recipients []string
	note       string
}

func (f *fakeBackend) wait() {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
}

func (f *fakeBackend) GenerateSummary(ctx context.Context, transcript, prompt string) (string, error) {
	f.mu.Lock()
	f.generateCalls = append(f.generateCalls, generateCall{transcript, prompt})
	f.mu.Unlock()

	f.wait()
	return f.summary, f.generateErr
}

func (f *fakeBackend) SendEmail(ctx context.Context, summary string, recipients []string, note string) (string, error) {
	f.mu.Lock()
	f.sendCalls = append(f.sendCalls, sendCall{summary, recipients, note})
	f.mu.Unlock()

	f.wait()
	return "Email sent successfully", f.sendErr
}

func (f *fakeBackend) generates() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.generateCalls)
}

func (f *fakeBackend) sends() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sendCalls)
}

// alerts collects every alert message
type alerts struct {
	mu       sync.Mutex
	messages []string
}

func (a *alerts) Alert(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, message)
}

func (a *alerts) all() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.messages...)
}
