package assistantview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the assistant endpoints over HTTP and satisfies API.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type askRequest struct {
	Prompt string `json:"prompt"`
}

type askResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

type historyTurn struct {
	Id        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Client) Ask(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(askRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/assistant", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload askResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		if payload.Error != "" {
			return "", fmt.Errorf("%s", payload.Error)
		}
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return payload.Response, nil
}

func (c *Client) History(ctx context.Context) ([]Turn, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/assistant/history", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var payload askResponse
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
			return nil, fmt.Errorf("%s", payload.Error)
		}
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var rows []historyTurn
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, err
	}

	turns := make([]Turn, len(rows))
	for i, r := range rows {
		turns[i] = Turn{
			ID:        r.Id,
			Prompt:    r.Prompt,
			Response:  r.Response,
			CreatedAt: r.CreatedAt,
		}
	}
	return turns, nil
}
