package domain

import (
	"time"

	"github.com/google/uuid"
)

// APIKeyID uniquely identifies an API key.
type APIKeyID uuid.UUID

// APIKey is a credential that authenticates REST callers. Short URLs keep a
// reference to the key that created them so lists can be scoped per author.
type APIKey struct {
	// ID is the unique identifier of the key.
	ID APIKeyID `json:"id"`
	// Key is the opaque secret presented by callers.
	Key string `json:"-"`
	// Name is an optional human-readable label.
	Name string `json:"name,omitempty"`
	// Enabled allows revoking a key without deleting it.
	Enabled bool `json:"enabled"`
	// CreatedAt is when the key was issued.
	CreatedAt time.Time `json:"createdAt"`
}
