package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCard is returned when a suit or rank is outside the defined sets.
	ErrInvalidCard = errors.New("invalid card")

	// ErrEmptyDeck is returned when drawing from a deck with no cards left.
	ErrEmptyDeck = errors.New("deck is empty")

	// ErrEmptyShoe is returned when drawing from an exhausted shoe. It wraps
	// ErrEmptyDeck so callers can treat both the same way.
	ErrEmptyShoe = fmt.Errorf("shoe is empty: %w", ErrEmptyDeck)

	// ErrInvalidDeckCount is returned when a shoe is requested with fewer than one deck.
	ErrInvalidDeckCount = errors.New("deck count must be positive")
)
