package summary

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethanbaker/notes-summarizer/internal/config"
	"github.com/ethanbaker/notes-summarizer/internal/llm"
	"github.com/ethanbaker/notes-summarizer/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(cfg config.LLMConfig, fake *fakeCompleter, log *logger.Logger) *gin.Engine {
	engine := gin.New()
	RegisterRoutes(engine.Group("/api"), NewController(NewService(cfg, fake), log))
	return engine
}

func post(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/generate-summary", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestGenerateSummary_Success(t *testing.T) {
	fake := &fakeCompleter{resp: &llm.ChatResponse{Choices: []string{"- Budget approved"}}}
	engine := newTestEngine(testLLMConfig, fake, logger.Nop())

	w := post(engine, `{"transcript":"We discussed Q3 budget.","prompt":"bullet points for executives"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"summary":"- Budget approved"}`, w.Body.String())
	assert.Equal(t, 1, fake.calls())
}

func TestGenerateSummary_BadRequest(t *testing.T) {
	bodies := map[string]string{
		"missing transcript": `{"prompt":"p"}`,
		"missing prompt":     `{"transcript":"t"}`,
		"empty transcript":   `{"transcript":"","prompt":"p"}`,
		"empty object":       `{}`,
		"malformed json":     `{"transcript":`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			fake := &fakeCompleter{}
			w := post(newTestEngine(testLLMConfig, fake, logger.Nop()), body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Transcript and prompt are required"}`, w.Body.String())
			assert.Zero(t, fake.calls(), "provider must not be invoked")
		})
	}
}

func TestGenerateSummary_MissingCredential(t *testing.T) {
	fake := &fakeCompleter{}
	engine := newTestEngine(config.LLMConfig{Model: "m"}, fake, logger.Nop())

	w := post(engine, `{"transcript":"t","prompt":"p"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"LLM API key not configured"}`, w.Body.String())
	assert.Zero(t, fake.calls())
}

func TestGenerateSummary_ProviderFailureIsGeneric(t *testing.T) {
	var buf bytes.Buffer
	fake := &fakeCompleter{err: errors.New("401 invalid api key sk-secret")}
	engine := newTestEngine(testLLMConfig, fake, logger.NewWithWriter(&buf, "info", "json"))

	w := post(engine, `{"transcript":"t","prompt":"p"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to generate summary"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "sk-secret")

	// Upstream detail is logged server-side
	assert.Contains(t, buf.String(), "sk-secret")
}

func TestGenerateSummary_NoChoices(t *testing.T) {
	fake := &fakeCompleter{resp: &llm.ChatResponse{}}
	w := post(newTestEngine(testLLMConfig, fake, logger.Nop()), `{"transcript":"t","prompt":"p"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"summary":"No summary generated"}`, w.Body.String())
}
