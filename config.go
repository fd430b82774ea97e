package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"cvchat/internal/tui"
)

type config struct {
	url     *url.URL
	headers map[string]string
}

func getConfig() (c config, err error) {
	// Get .env file
	configDir, err := os.UserConfigDir()
	if err != nil {
		tui.PrintWarn("warning: could not get config dir: %v", err)
	} else {
		err := godotenv.Load(filepath.Join(configDir, "cvchat.env"))
		if err != nil {
			tui.PrintWarn("warning: could not load %s", filepath.Join(configDir, "cvchat.env"))
		}
	}

	// Get env vars
	urlStr := os.Getenv("CVCHAT_URL")
	if urlStr == "" {
		urlStr = "http://localhost:5001"
		tui.PrintWarn("warning: 'CVCHAT_URL' not set, defaulting to %s", urlStr)
	}
	c.url, err = url.Parse(urlStr)
	if err != nil {
		return c, fmt.Errorf("could not parse url: %w", err)
	}

	// Get extra request headers
	c.headers = map[string]string{}
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "CVCHAT_HEADER_") {
			kv := strings.SplitN(e, "=", 2)
			if len(kv) != 2 {
				continue
			}

			c.headers[strings.TrimPrefix(kv[0], "CVCHAT_HEADER_")] = kv[1]
		}
	}

	return c, nil
}
