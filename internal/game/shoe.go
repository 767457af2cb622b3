package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Shoe pools several decks into one shuffled stack. A shoe belongs to a
// single table; it is not safe for concurrent use.
type Shoe struct {
	ID    string
	decks int
	cards []Card
}

// NewShoe builds decks fresh decks, concatenates them and shuffles the
// combined pile once.
func NewShoe(decks int, opts ...Option) (*Shoe, error) {
	if decks < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDeckCount, decks)
	}

	o := buildOptions(opts)
	cards := make([]Card, 0, decks*len(Suits)*len(Ranks))
	for i := 0; i < decks; i++ {
		cards = append(cards, NewDeck(WithRand(o.rng)).cards...)
	}
	shuffleCards(o.rng, cards)

	return &Shoe{
		ID:    uuid.New().String(),
		decks: decks,
		cards: cards,
	}, nil
}

// Decks returns the number of decks the shoe was built from.
func (s *Shoe) Decks() int {
	return s.decks
}

// Remaining returns the number of cards not yet drawn.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Draw removes and returns the top card of the shoe.
func (s *Shoe) Draw() (Card, error) {
	card, rest, ok := drawTop(s.cards)
	if !ok {
		return Card{}, ErrEmptyShoe
	}
	s.cards = rest
	return card, nil
}
