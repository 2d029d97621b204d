package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://api.openai.com/v1"

// Client talks to the upstream realtime-voice API. Both operations are
// stateless pass-throughs: nothing is cached or retried here.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		APIKey:  apiKey,
		HTTP: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// UpstreamError carries the provider's status and body for server-side
// diagnostics. Callers must not expose Body to clients.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream realtime error: status %d: %s", e.Status, e.Body)
}

type sessionRequest struct {
	Model string `json:"model"`
	Voice string `json:"voice"`
}

// CreateSession requests a short-lived realtime credential and returns
// the upstream JSON verbatim.
func (c *Client) CreateSession(ctx context.Context, model, voice string) (json.RawMessage, error) {
	payload, err := json.Marshal(sessionRequest{Model: model, Voice: voice})
	if err != nil {
		return nil, fmt.Errorf("marshal session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/realtime/sessions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("realtime session request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	return json.RawMessage(body), nil
}

type callSession struct {
	Type  string `json:"type"`
	Model string `json:"model"`
}

// CreateCall forwards an SDP offer as a multipart form together with
// the fixed session descriptor and returns the raw answer SDP plus the
// upstream Location header.
func (c *Client) CreateCall(ctx context.Context, sdp, model string) (answerSdp, location string, err error) {
	sessionJSON, err := json.Marshal(callSession{Type: "realtime", Model: model})
	if err != nil {
		return "", "", fmt.Errorf("marshal call session: %w", err)
	}

	var form bytes.Buffer
	w := multipart.NewWriter(&form)
	if err := w.WriteField("sdp", sdp); err != nil {
		return "", "", fmt.Errorf("write sdp field: %w", err)
	}
	if err := w.WriteField("session", string(sessionJSON)); err != nil {
		return "", "", fmt.Errorf("write session field: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", "", fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/realtime/calls", &form)
	if err != nil {
		return "", "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("realtime call request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", "", &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	return string(body), resp.Header.Get("Location"), nil
}
