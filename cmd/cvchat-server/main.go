package main

import (
	"context"
	"log"
	"net/http"

	"cvchat/internal/config"
	"cvchat/internal/cv"
	"cvchat/internal/llm"
	"cvchat/internal/server"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	knowledge, err := cv.Load(cfg.CVFilePath, cfg.CVOwner)
	if err != nil {
		log.Fatalf("failed to load CV: %v", err)
	}
	if knowledge.Loaded() {
		log.Printf("loaded CV %s (%d characters)", knowledge.Path(), knowledge.Size())
	} else {
		log.Printf("warning: CV file not found: %s, answering technical questions only", cfg.CVFilePath)
	}

	var completer llm.Completer
	switch cfg.Provider {
	case "groq":
		completer = llm.NewGroq(cfg.GroqAPIKey, cfg.GroqModel)
	case "ollama":
		completer, err = llm.NewOllama(context.Background(), cfg.OllamaURL, cfg.OllamaModel)
		if err != nil {
			log.Fatalf("failed to reach ollama: %v", err)
		}
	}

	s := server.New(cfg, completer, knowledge)
	addr := ":" + cfg.Port
	log.Printf("cvchat server listening on %s (provider=%s)", addr, cfg.Provider)
	log.Fatal(http.ListenAndServe(addr, s.Router()))
}
