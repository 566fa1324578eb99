package ports

import "context"

// CredentialStore is the single durable slot holding the raw credential.
// Nothing else about the session is ever persisted.
type CredentialStore interface {
	// Load returns the stored credential or domain.ErrNoCredential.
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, credential string) error
	// Erase clears the slot. Erasing an empty slot is not an error.
	Erase(ctx context.Context) error
}

// Pinger is implemented by backends that can report their own health.
type Pinger interface {
	Ping(ctx context.Context) error
}
