package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"cvchat/internal/client"
	"cvchat/internal/tui"
)

var version = "0.1.0"

func main() {
	cfg, err := getConfig()
	if err != nil {
		tui.PrintErr("error: %v", err)
		os.Exit(1)
	}

	// Keep transport diagnostics out of the TUI frame
	if os.Getenv("CVCHAT_DEBUG") != "" {
		f, err := tea.LogToFile("cvchat.log", "cvchat")
		if err != nil {
			tui.PrintErr("error: could not open log file: %v", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// Create context
	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	// Create channels
	input := make(chan string, 1)
	output := make(chan tui.Msg, 1)

	c := client.New(cfg.url.String(), cfg.headers)

	// Create tea
	t := tea.NewProgram(tui.New(version, input, output), tea.WithContext(ctx), tea.WithAltScreen())

	// Start tea
	wg.Add(1)
	var teaErr error
	go func() {
		_, err := t.Run()

		if !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, tea.ErrInterrupted) {
			teaErr = err
		}

		// If context not yet cancelled
		if err := ctx.Err(); err == nil {
			cancel()
		}

		wg.Done()
	}()

	// Start relay worker
	wg.Add(1)
	go func() {
		client.Relay(ctx, c, input, output)

		// If context not yet cancelled
		if err := ctx.Err(); err == nil {
			cancel()
		}

		wg.Done()
	}()

	// Wait for both tea & relay
	wg.Wait()

	if teaErr != nil {
		tui.PrintErr("%v", teaErr)
		os.Exit(1)
	}
}
