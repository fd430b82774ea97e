package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Client talks to the remote chat endpoint: one POST per user turn, no
// retries, no streaming.
type Client struct {
	http    *http.Client
	baseURL string
	session string
}

func New(baseURL string, headers map[string]string) *Client {
	return &Client{
		http: &http.Client{
			Transport: HeaderMiddleware{
				Headers: headers,
				Proxied: http.DefaultTransport,
			},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		session: uuid.NewString(),
	}
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// Send posts one message and returns the reply text. An empty reply with a
// nil error means the server answered without a response field.
func (c *Client) Send(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(chatRequest{Message: message, SessionID: c.session})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	// Any non-2xx status is a failure, independent of body content
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("chat endpoint returned %s", res.Status)
	}

	var reply chatResponse
	if err := json.NewDecoder(res.Body).Decode(&reply); err != nil {
		return "", fmt.Errorf("decode reply: %w", err)
	}

	return reply.Response, nil
}

type HeaderMiddleware struct {
	Headers map[string]string
	Proxied http.RoundTripper
}

func (hm HeaderMiddleware) RoundTrip(req *http.Request) (res *http.Response, e error) {
	for k, v := range hm.Headers {
		req.Header.Add(k, v)
	}

	return hm.Proxied.RoundTrip(req)
}
