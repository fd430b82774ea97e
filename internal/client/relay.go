package client

import (
	"context"
	"log"
	"strings"

	"cvchat/internal/ctxutil"
	"cvchat/internal/tui"
)

const (
	// FallbackText replaces the reply on any transport, decode, or status
	// failure.
	FallbackText = "Sorry, I encountered an error. Please try again."
	// NoResponseText replaces a successful reply that carries no response
	// field.
	NoResponseText = "Sorry, no response from server."
)

// Relay forwards each submitted message to the chat endpoint and delivers
// exactly one bot message back per submission, so the widget's loading guard
// is released on every path.
func Relay(ctx context.Context, c *Client, input chan string, output chan tui.Msg) {
	for {
		text, ok := ctxutil.Next(ctx, input)
		if !ok {
			return
		}

		reply, err := c.Send(ctx, text)
		switch {
		case err != nil:
			log.Printf("chat request failed: %v", err)
			reply = FallbackText
		case strings.TrimSpace(reply) == "":
			reply = NoResponseText
		}

		if !ctxutil.Send(ctx, output, tui.Msg{Text: reply, Kind: tui.MsgBot}) {
			return
		}
	}
}
