// Package assistantview holds the UI-agnostic state machine behind the
// assistant chat screen: a compose box, a transcript, and a single explicit
// activity state. Rendering is left to the caller via hooks.
package assistantview

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// State is the one activity indicator for the whole view. The view is never
// loading history and sending at the same time.
type State int

const (
	StateIdle State = iota
	StateLoadingHistory
	StateSending
)

func (s State) String() string {
	switch s {
	case StateLoadingHistory:
		return "loading_history"
	case StateSending:
		return "sending"
	default:
		return "idle"
	}
}

// Turn is one prompt/response pair as the view renders it. IDs for turns
// appended after a send are synthesized client-side from the wall clock and
// are not reconciled with the server's row IDs.
type Turn struct {
	ID        string
	Prompt    string
	Response  string
	CreatedAt time.Time
}

// API is the backend surface the view needs.
type API interface {
	History(ctx context.Context) ([]Turn, error)
	Ask(ctx context.Context, prompt string) (string, error)
}

type View struct {
	api        API
	state      State
	compose    string
	transcript []Turn

	// OnTranscriptChanged fires after the transcript slice changes, e.g. so
	// the caller can scroll to the bottom.
	OnTranscriptChanged func()

	// Notify surfaces a blocking alert to the user. Optional.
	Notify func(msg string)
}

func New(api API) *View {
	return &View{api: api}
}

func (v *View) State() State        { return v.state }
func (v *View) Compose() string     { return v.compose }
func (v *View) SetCompose(s string) { v.compose = s }

// Transcript returns the rendered turns, oldest first.
func (v *View) Transcript() []Turn {
	return v.transcript
}

// LoadHistory replaces the transcript with the server-side history. A failed
// load leaves the transcript empty rather than erroring the whole screen.
func (v *View) LoadHistory(ctx context.Context) {
	if v.state != StateIdle {
		return
	}
	v.state = StateLoadingHistory
	defer func() { v.state = StateIdle }()

	turns, err := v.api.History(ctx)
	if err != nil {
		v.transcript = nil
		return
	}
	v.transcript = turns
	v.transcriptChanged()
}

// Submit sends the current compose content. It is a no-op while the view is
// busy or when the compose box is blank. The compose box is cleared
// immediately; on failure the text is lost and the transcript is unchanged.
func (v *View) Submit(ctx context.Context) {
	if v.state != StateIdle {
		return
	}
	prompt := v.compose
	if strings.TrimSpace(prompt) == "" {
		return
	}

	v.state = StateSending
	v.compose = ""

	response, err := v.api.Ask(ctx, prompt)
	v.state = StateIdle
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "Failed to get response from assistant"
		}
		v.notify(msg)
		return
	}

	v.transcript = append(v.transcript, Turn{
		ID:        strconv.FormatInt(time.Now().UnixMilli(), 10),
		Prompt:    prompt,
		Response:  response,
		CreatedAt: time.Now(),
	})
	v.transcriptChanged()
}

// HandleEnter implements the compose box key binding: Enter submits,
// Shift+Enter inserts a newline.
func (v *View) HandleEnter(ctx context.Context, shift bool) {
	if shift {
		v.compose += "\n"
		return
	}
	v.Submit(ctx)
}

func (v *View) transcriptChanged() {
	if v.OnTranscriptChanged != nil {
		v.OnTranscriptChanged()
	}
}

func (v *View) notify(msg string) {
	if v.Notify != nil {
		v.Notify(msg)
	}
}
