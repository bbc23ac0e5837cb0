package usecase

import (
	"context"
	"time"
)

// ImageSigner exchanges a stored image reference for a temporary access URL.
// Unrecognised references come back unchanged.
type ImageSigner interface {
	Sign(ctx context.Context, raw string, ttl time.Duration) (string, error)
}

// AccountMirror creates the Firebase Authentication account for a new admin.
type AccountMirror interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
}
