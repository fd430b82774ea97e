package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Groq speaks the OpenAI-compatible chat completions API at api.groq.com.
type Groq struct {
	client *openai.Client
	model  string
}

const groqBaseURL = "https://api.groq.com/openai/v1"

func NewGroq(apiKey, model string) *Groq {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}

	return &Groq{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (g *Groq) Complete(ctx context.Context, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.7,
		MaxTokens:   1024,
		TopP:        1,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	res, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("groq completion: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", errors.New("groq returned no choices")
	}

	return res.Choices[0].Message.Content, nil
}
