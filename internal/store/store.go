// Package store persists bot configuration between runs. Conversation
// state is deliberately not stored; only configuration survives a
// restart.
package store

// Storage is the persistence interface for configuration values.
// Values written through SetSecret are encrypted at rest.
type Storage interface {
	SetConfig(key, value string) error
	GetConfig(key string) (string, error)
	ListConfig() (map[string]string, error)

	SetSecret(key, value string) error
	GetSecret(key string) (string, error)

	Close() error
}
