// Package filter narrows the shop and journal catalogs down to one active
// category.
package filter

import (
	"context"
	"fmt"

	"sattva/models"
	"sattva/services/session"
)

type FilterError struct {
	Code    string
	Message string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var ErrUnknownFilter = &FilterError{Code: "unknownFilter", Message: "filter is not one of the offered values"}

var (
	ShopFilters    = []string{models.FilterAll, "Vata", "Pitta", "Kapha"}
	JournalFilters = []string{models.FilterAll, "Yoga", "Recipes", "Herbs", "Meditation"}
)

// Apply returns the items whose key equals active, in their original order.
// FilterAll returns every item.
func Apply[T any](items []T, active string, key func(T) string) []T {
	if active == models.FilterAll {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if key(it) == active {
			out = append(out, it)
		}
	}
	return out
}

// Valid reports whether value is one of options.
func Valid(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

func controls(options []string, active string) models.FilterControls {
	return models.FilterControls{Active: active, Options: options}
}

// activeFilter reads the filter stored under key, defaulting to FilterAll.
func activeFilter(ctx context.Context, store session.Store, sessionID, key string, options []string) (string, error) {
	var st models.FilterState
	found, err := store.Get(ctx, sessionID, key, &st)
	if err != nil {
		return "", err
	}
	if !found || !Valid(options, st.Active) {
		return models.FilterAll, nil
	}
	return st.Active, nil
}

func setFilter(ctx context.Context, store session.Store, sessionID, key string, options []string, value string) error {
	if !Valid(options, value) {
		return ErrUnknownFilter
	}
	return store.Set(ctx, sessionID, key, models.FilterState{Active: value})
}
