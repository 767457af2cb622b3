package game

import "strings"

const (
	// BlackjackTotal is the best possible total; anything above it is bust.
	BlackjackTotal = 21
	// DealerStandTotal is the total at which a dealer stops drawing.
	DealerStandTotal = 17

	softAceBonus = 10
)

type ScoreKind string

const (
	ScoreBlackjack ScoreKind = "blackjack" // Natural: ace plus a ten-valued card, two cards only
	ScoreSoft      ScoreKind = "soft"      // One ace counted as 11
	ScoreHard      ScoreKind = "hard"      // Every ace counted as 1
)

// Score is the result of evaluating a hand.
type Score struct {
	Kind  ScoreKind `json:"kind"`
	Total int       `json:"total"`
}

// Hand holds the cards dealt to one participant, in deal order. The zero
// value is an empty hand ready for use.
type Hand struct {
	cards       []Card
	doubled     bool
	surrendered bool
}

// NewHand creates an empty hand, optionally seeded with cards.
func NewHand(cards ...Card) *Hand {
	h := &Hand{}
	for _, c := range cards {
		h.Add(c)
	}
	return h
}

// Add appends a card to the hand. No limit is enforced.
func (h *Hand) Add(card Card) {
	h.cards = append(h.cards, card)
}

// Count returns the number of cards held.
func (h *Hand) Count() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in deal order.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h *Hand) HasAce() bool {
	for _, c := range h.cards {
		if c.Rank == Ace {
			return true
		}
	}
	return false
}

// HasSplit reports whether the hand is exactly two cards of the same rank.
// Suits are ignored, so K♥ and K♠ split but K♥ and Q♥ do not.
func (h *Hand) HasSplit() bool {
	return len(h.cards) == 2 && h.cards[0].Rank == h.cards[1].Rank
}

// HasBlackjack reports a natural: exactly two cards, an ace and a ten-valued card.
func (h *Hand) HasBlackjack() bool {
	if len(h.cards) != 2 || !h.HasAce() {
		return false
	}
	return h.cards[0].Value() == 10 || h.cards[1].Value() == 10
}

// Upcard returns the value of the second card dealt, the one shown to the
// table. ok is false until two cards are held.
func (h *Hand) Upcard() (value int, ok bool) {
	if len(h.cards) < 2 {
		return 0, false
	}
	return h.cards[1].Value(), true
}

// Score evaluates the hand from scratch. At most one ace is promoted to 11,
// and only while that keeps the total at or under 21.
func (h *Hand) Score() Score {
	if h.HasBlackjack() {
		return Score{Kind: ScoreBlackjack, Total: BlackjackTotal}
	}

	score := Score{Kind: ScoreHard}
	for _, c := range h.cards {
		score.Total += c.Value()
	}

	if h.HasAce() && score.Total+softAceBonus <= BlackjackTotal {
		score.Kind = ScoreSoft
		score.Total += softAceBonus
	}

	return score
}

// Bust reports whether the hand is over 21.
func (h *Hand) Bust() bool {
	return h.Score().Total > BlackjackTotal
}

// Stand is the dealer policy: stand on any 17 or more, bust totals included.
func (h *Hand) Stand() bool {
	return h.Score().Total >= DealerStandTotal
}

func (h *Hand) Doubled() bool {
	return h.doubled
}

// Double marks the hand as doubled down. It cannot be undone.
func (h *Hand) Double() {
	h.doubled = true
}

func (h *Hand) Surrendered() bool {
	return h.surrendered
}

// Surrender marks the hand as surrendered. It cannot be undone.
func (h *Hand) Surrender() {
	h.surrendered = true
}

// String renders the hand as its card displays separated by spaces.
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.Display()
	}
	return strings.Join(parts, " ")
}
