package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vaul-ai-be/internal/dto"
	"vaul-ai-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssistantService struct {
	askCalls   int
	lastPrompt string
	response   string
	err        error
	history    []*dto.ConversationTurnResponse
}

func (s *stubAssistantService) Ask(_ context.Context, _ uuid.UUID, prompt string) (*dto.AskAssistantResponse, error) {
	s.askCalls++
	s.lastPrompt = prompt
	if s.err != nil {
		return nil, s.err
	}
	return &dto.AskAssistantResponse{Response: s.response}, nil
}

func (s *stubAssistantService) GetHistory(_ context.Context, _ uuid.UUID) ([]*dto.ConversationTurnResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.history, nil
}

func newAssistantTestApp(t *testing.T, svc *stubAssistantService) (*fiber.App, string) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	app := fiber.New()
	api := app.Group("/api")
	NewAssistantController(svc).RegisterRoutes(api)

	token, err := serverutils.IssueAccessToken(uuid.New())
	require.NoError(t, err)
	return app, token
}

func postAssistant(t *testing.T, app *fiber.App, token, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/assistant", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestAskSuccess(t *testing.T) {
	svc := &stubAssistantService{response: "A fox is quick and brown."}
	app, token := newAssistantTestApp(t, svc)

	resp := postAssistant(t, app, token, `{"prompt": "Tell me about foxes"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, map[string]interface{}{"response": "A fox is quick and brown."}, body)
	assert.Equal(t, "Tell me about foxes", svc.lastPrompt)
}

func TestAskMissingPrompt(t *testing.T) {
	svc := &stubAssistantService{}
	app, token := newAssistantTestApp(t, svc)

	for _, body := range []string{`{}`, `{"prompt": ""}`, `not json`} {
		resp := postAssistant(t, app, token, body)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, map[string]interface{}{"error": "Prompt is required"}, decodeBody(t, resp))
	}
	assert.Zero(t, svc.askCalls, "the model must not be called without a prompt")
}

func TestAskUnauthorized(t *testing.T) {
	svc := &stubAssistantService{}
	app, _ := newAssistantTestApp(t, svc)

	resp := postAssistant(t, app, "", `{"prompt": "hello"}`)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"error": "Unauthorized"}, decodeBody(t, resp))
	assert.Zero(t, svc.askCalls)
}

func TestAskServiceError(t *testing.T) {
	svc := &stubAssistantService{err: errors.New("rate limited")}
	app, token := newAssistantTestApp(t, svc)

	resp := postAssistant(t, app, token, `{"prompt": "hello"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"error": "rate limited"}, decodeBody(t, resp))
}

func TestGetHistoryReturnsRawArray(t *testing.T) {
	svc := &stubAssistantService{
		history: []*dto.ConversationTurnResponse{
			{Id: uuid.New(), Prompt: "first", Response: "one"},
			{Id: uuid.New(), Prompt: "second", Response: "two"},
		},
	}
	app, token := newAssistantTestApp(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/assistant/history", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var turns []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &turns))
	require.Len(t, turns, 2)
	assert.Equal(t, "first", turns[0]["prompt"])
	assert.Equal(t, "two", turns[1]["response"])
}
