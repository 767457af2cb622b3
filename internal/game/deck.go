package game

import (
	"math/rand"
	"time"
)

// Option configures a Deck or Shoe.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand sets the random source used for shuffling. Two decks given
// identically seeded sources shuffle into the same order.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a new standard 52-card deck, suit by suit and rank by rank.
// The deck is not shuffled.
func NewDeck(opts ...Option) *Deck {
	o := buildOptions(opts)
	deck := &Deck{
		cards: make([]Card, 0, len(Suits)*len(Ranks)),
		rng:   o.rng,
	}

	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck.cards = append(deck.cards, Card{Suit: suit, Rank: rank})
		}
	}

	return deck
}

// Shuffle randomizes the order of cards in the deck
func (d *Deck) Shuffle() {
	shuffleCards(d.rng, d.cards)
}

// Draw removes and returns the top card of the deck.
func (d *Deck) Draw() (Card, error) {
	card, rest, ok := drawTop(d.cards)
	if !ok {
		return Card{}, ErrEmptyDeck
	}
	d.cards = rest
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the cards left, bottom first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// shuffleCards is a Fisher-Yates shuffle in place.
func shuffleCards(r *rand.Rand, cards []Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// drawTop takes from the end of the slice so repeated draws never repeat a card.
func drawTop(cards []Card) (Card, []Card, bool) {
	if len(cards) == 0 {
		return Card{}, cards, false
	}
	last := len(cards) - 1
	return cards[last], cards[:last], true
}
