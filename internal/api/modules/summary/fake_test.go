package summary

import (
	"context"
	"sync"

	"github.com/ethanbaker/notes-summarizer/internal/llm"
)

// fakeCompleter records every request and answers with a canned response
type fakeCompleter struct {
	mu       sync.Mutex
	requests []llm.ChatRequest
	resp     *llm.ChatResponse
	err      error
}

func (f *fakeCompleter) CompleteChat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, req)
	return f.resp, f.err
}

func (f *fakeCompleter) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}
