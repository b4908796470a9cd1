package assistantview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAPI struct {
	history   []Turn
	histErr   error
	response  string
	askErr    error
	askCalls  int
	lastAsked string

	// onAsk runs inside Ask, letting tests poke the view mid-flight.
	onAsk func()
}

func (s *stubAPI) History(context.Context) ([]Turn, error) {
	return s.history, s.histErr
}

func (s *stubAPI) Ask(_ context.Context, prompt string) (string, error) {
	s.askCalls++
	s.lastAsked = prompt
	if s.onAsk != nil {
		s.onAsk()
	}
	return s.response, s.askErr
}

func TestSubmitEmptyComposeIsNoop(t *testing.T) {
	api := &stubAPI{}
	view := New(api)

	view.Submit(context.Background())

	assert.Zero(t, api.askCalls)
	assert.Empty(t, view.Transcript())
	assert.Equal(t, StateIdle, view.State())
}

func TestSubmitWhitespaceComposeIsNoop(t *testing.T) {
	api := &stubAPI{}
	view := New(api)

	view.SetCompose("   \n")
	view.Submit(context.Background())

	assert.Zero(t, api.askCalls)
	assert.Equal(t, "   \n", view.Compose(), "a blank compose is left alone")
	assert.Equal(t, StateIdle, view.State())
}

func TestSubmitSendsUntrimmedText(t *testing.T) {
	api := &stubAPI{response: "ok"}
	view := New(api)

	view.SetCompose("  hi  ")
	view.Submit(context.Background())

	assert.Equal(t, "  hi  ", api.lastAsked, "only the blank check trims; the text goes as typed")
}

func TestSubmitAppendsTurnAndClearsCompose(t *testing.T) {
	api := &stubAPI{response: "hello there"}
	view := New(api)

	scrolled := false
	view.OnTranscriptChanged = func() { scrolled = true }

	view.SetCompose("hi")
	view.Submit(context.Background())

	assert.Equal(t, "hi", api.lastAsked)
	assert.Empty(t, view.Compose(), "compose clears on submit")
	require.Len(t, view.Transcript(), 1)
	turn := view.Transcript()[0]
	assert.Equal(t, "hi", turn.Prompt)
	assert.Equal(t, "hello there", turn.Response)
	assert.NotEmpty(t, turn.ID)
	assert.True(t, scrolled)
	assert.Equal(t, StateIdle, view.State())
}

func TestSubmitWhileSendingIsNoop(t *testing.T) {
	api := &stubAPI{response: "ok"}
	view := New(api)

	// Re-entrant submit during an in-flight request must not double-send.
	api.onAsk = func() {
		view.SetCompose("second")
		view.Submit(context.Background())
	}

	view.SetCompose("first")
	view.Submit(context.Background())

	assert.Equal(t, 1, api.askCalls)
	assert.Equal(t, "first", api.lastAsked)
	require.Len(t, view.Transcript(), 1)
}

func TestSubmitFailureNotifiesAndKeepsTranscript(t *testing.T) {
	api := &stubAPI{askErr: errors.New("rate limited")}
	view := New(api)

	var notified string
	view.Notify = func(msg string) { notified = msg }

	view.SetCompose("hi")
	view.Submit(context.Background())

	// The server's error text reaches the user, not a canned string.
	assert.Equal(t, "rate limited", notified)
	assert.Empty(t, view.Transcript(), "failed sends leave the transcript unchanged")
	assert.Empty(t, view.Compose(), "compose stays cleared even on failure")
	assert.Equal(t, StateIdle, view.State())
}

type blankError struct{}

func (blankError) Error() string { return "" }

func TestSubmitFailureWithoutMessageUsesFallback(t *testing.T) {
	api := &stubAPI{askErr: blankError{}}
	view := New(api)

	var notified string
	view.Notify = func(msg string) { notified = msg }

	view.SetCompose("hi")
	view.Submit(context.Background())

	assert.Equal(t, "Failed to get response from assistant", notified)
}

func TestLoadHistoryPopulatesTranscript(t *testing.T) {
	api := &stubAPI{history: []Turn{
		{ID: "1", Prompt: "a", Response: "b"},
		{ID: "2", Prompt: "c", Response: "d"},
	}}
	view := New(api)

	view.LoadHistory(context.Background())

	require.Len(t, view.Transcript(), 2)
	assert.Equal(t, "a", view.Transcript()[0].Prompt)
	assert.Equal(t, StateIdle, view.State())
}

func TestLoadHistoryFailureLeavesEmptyTranscript(t *testing.T) {
	api := &stubAPI{histErr: errors.New("unreachable")}
	view := New(api)

	view.LoadHistory(context.Background())

	assert.Empty(t, view.Transcript())
	assert.Equal(t, StateIdle, view.State())
}

func TestHandleEnter(t *testing.T) {
	api := &stubAPI{response: "ok"}
	view := New(api)

	view.SetCompose("line one")
	view.HandleEnter(context.Background(), true)
	assert.Equal(t, "line one\n", view.Compose(), "shift+enter inserts a newline")
	assert.Zero(t, api.askCalls)

	view.HandleEnter(context.Background(), false)
	assert.Equal(t, 1, api.askCalls, "plain enter submits")
	assert.Equal(t, "line one\n", api.lastAsked)
}
