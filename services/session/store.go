// Package session holds per-visitor state scoped to a browsing session.
// Every key lives under its session and disappears when the session ends,
// either explicitly through Clear or when the TTL lapses.
package session

import (
	"context"
	"errors"
)

// Keys used by the page services.
const (
	KeyBooking             = "booking"
	KeyRecipes             = "recipes"
	KeyShop                = "shop"
	KeyJournal             = "journal"
	KeyNewsletter          = "newsletter"
	KeyNewsletterDismissed = "newsletter_dismissed"
)

// ErrNoSession is returned when a call is made without a session ID.
var ErrNoSession = errors.New("session id is required")

// Store is a session-scoped key-value store. Values are JSON encoded.
type Store interface {
	// Get decodes the value stored under key into dest. It reports false
	// when the key is absent.
	Get(ctx context.Context, sessionID, key string, dest any) (bool, error)
	// Set stores value under key and extends the session lifetime.
	Set(ctx context.Context, sessionID, key string, value any) error
	// Delete removes one key.
	Delete(ctx context.Context, sessionID, key string) error
	// Clear ends the session, removing every key.
	Clear(ctx context.Context, sessionID string) error
	// Ping checks the backing store.
	Ping(ctx context.Context) error
}
