package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

// Ollama runs completions against a local model, for keyless development.
type Ollama struct {
	ollama *api.Client
	model  string
}

func NewOllama(ctx context.Context, rawURL, model string) (*Ollama, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("could not parse ollama url: %w", err)
	}

	client := &http.Client{
		Timeout: 5 * time.Minute,
	}

	ollama := api.NewClient(u, client)
	if err := ollama.Heartbeat(ctx); err != nil {
		return nil, err
	}

	return &Ollama{
		ollama: ollama,
		model:  model,
	}, nil
}

func (o *Ollama) Complete(ctx context.Context, messages []Message) (string, error) {
	req := &api.ChatRequest{
		Model:  o.model,
		Stream: new(bool), // single response
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, api.Message{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	var reply strings.Builder
	err := o.ollama.Chat(ctx, req, func(res api.ChatResponse) error {
		reply.WriteString(res.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama chat: %w", err)
	}

	return reply.String(), nil
}
