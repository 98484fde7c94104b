package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"sleuthbot/internal/bot"
	"sleuthbot/internal/config"
	"sleuthbot/internal/lookup"
	"sleuthbot/internal/observe"
	"sleuthbot/internal/session"
	"sleuthbot/internal/store"
)

// Stored-config keys. Values under apiKeyConfig are encrypted at rest.
const (
	apiURLConfig = "api.base_url"
	apiKeyConfig = "api.key"
)

func newObserver() *observe.Observer {
	if ciMode {
		return observe.NewJSON(os.Stdout, verbose)
	}
	return observe.New(os.Stderr, verbose)
}

func getStore() (store.Storage, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return store.NewSQLiteStore(filepath.Join(home, ".sleuthbot", "config.db"))
}

// resolveAPI returns the API base URL and default key, preferring
// environment and config file over the persistent store.
func resolveAPI(s store.Storage) (baseURL, apiKey string, err error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return "", "", err
	}

	baseURL = cfg.APIURL
	if baseURL == "" {
		if baseURL, err = s.GetConfig(apiURLConfig); err != nil {
			return "", "", err
		}
	}
	if baseURL == "" {
		return "", "", fmt.Errorf("no API base URL configured (set %s, %s in the config file, or run: sleuthbot config set %s <url>)",
			config.EnvAPIURL, "api_url", apiURLConfig)
	}

	apiKey = cfg.APIKey
	if apiKey == "" {
		if apiKey, err = s.GetSecret(apiKeyConfig); err != nil {
			return "", "", err
		}
	}
	return baseURL, apiKey, nil
}

func buildClient(obs *observe.Observer) (client *lookup.Client, apiKey string, closeStore func(), err error) {
	s, err := getStore()
	if err != nil {
		return nil, "", nil, err
	}

	baseURL, apiKey, err := resolveAPI(s)
	if err != nil {
		s.Close()
		return nil, "", nil, err
	}

	client, err = lookup.NewClient(baseURL)
	if err != nil {
		s.Close()
		return nil, "", nil, err
	}

	obs.Component("cli").Debug().Str("base_url", baseURL).Msg("lookup client ready")
	return client, apiKey, func() { s.Close() }, nil
}

func buildBot(obs *observe.Observer) (*bot.Bot, func(), error) {
	client, apiKey, closeStore, err := buildClient(obs)
	if err != nil {
		return nil, nil, err
	}

	sessions := session.NewManager(apiKey)
	b := bot.New(sessions, client, obs, nil)
	return b, closeStore, nil
}
