package game

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type Suit string
type Rank string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
	Clubs    Suit = "clubs"
)

const (
	Two   Rank = "two"
	Three Rank = "three"
	Four  Rank = "four"
	Five  Rank = "five"
	Six   Rank = "six"
	Seven Rank = "seven"
	Eight Rank = "eight"
	Nine  Rank = "nine"
	Ten   Rank = "ten"
	Jack  Rank = "jack"
	Queen Rank = "queen"
	King  Rank = "king"
	Ace   Rank = "ace"
)

// Suits lists every suit in deck construction order.
var Suits = []Suit{Hearts, Diamonds, Spades, Clubs}

// Ranks lists every rank in deck construction order.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s.Glyph() != ""
}

// Glyph returns the unicode symbol used when rendering the suit.
func (s Suit) Glyph() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	default:
		return ""
	}
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r.Value() != 0
}

// Value returns the blackjack value of the rank. An ace is always 1 here;
// counting it as 11 is a scoring decision made by Hand.
func (r Rank) Value() int {
	switch r {
	case Ace:
		return 1
	case Ten, Jack, Queen, King:
		return 10
	case Two:
		return 2
	case Three:
		return 3
	case Four:
		return 4
	case Five:
		return 5
	case Six:
		return 6
	case Seven:
		return 7
	case Eight:
		return 8
	case Nine:
		return 9
	default:
		return 0
	}
}

// Label returns the fixed-width, two character rank label.
func (r Rank) Label() string {
	switch r {
	case Ten:
		return "10"
	case Jack:
		return " J"
	case Queen:
		return " Q"
	case King:
		return " K"
	case Ace:
		return " A"
	default:
		if v := r.Value(); v >= 2 && v <= 9 {
			return fmt.Sprintf(" %d", v)
		}
		return ""
	}
}

// Card is a single playing card. Cards are compared with ==.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// NewCard builds a card, rejecting suits or ranks outside the defined sets.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, suit)
	}
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, rank)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// Valid reports whether both the suit and the rank are known.
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// Value returns the blackjack value of the card (ace = 1).
func (c Card) Value() int {
	return c.Rank.Value()
}

// Display returns the three column terminal form, e.g. " A♠" or "10♥".
func (c Card) Display() string {
	return c.Rank.Label() + c.Suit.Glyph()
}

// String returns the compact shorthand accepted by ParseCard, e.g. "A♠".
func (c Card) String() string {
	return strings.TrimSpace(c.Rank.Label()) + c.Suit.Glyph()
}

// Equals checks if two cards share suit and rank
func (c Card) Equals(other Card) bool {
	return c == other
}

// ParseCard parses shorthand such as "A♠", "10h" or "QD" into a Card.
func ParseCard(s string) (Card, error) {
	if utf8.RuneCountInString(s) < 2 {
		return Card{}, fmt.Errorf("%w: shorthand %q too short", ErrInvalidCard, s)
	}

	last, size := utf8.DecodeLastRuneInString(s)
	var suit Suit
	switch last {
	case '♥', 'h', 'H':
		suit = Hearts
	case '♦', 'd', 'D':
		suit = Diamonds
	case '♠', 's', 'S':
		suit = Spades
	case '♣', 'c', 'C':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, string(last))
	}

	label := s[:len(s)-size]
	var rank Rank
	switch strings.ToUpper(label) {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "10":
		rank = Ten
	case "9":
		rank = Nine
	case "8":
		rank = Eight
	case "7":
		rank = Seven
	case "6":
		rank = Six
	case "5":
		rank = Five
	case "4":
		rank = Four
	case "3":
		rank = Three
	case "2":
		rank = Two
	default:
		return Card{}, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, label)
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses every shorthand in order, stopping at the first failure.
func ParseCards(shorthands []string) ([]Card, error) {
	cards := make([]Card, 0, len(shorthands))
	for i, s := range shorthands {
		c, err := ParseCard(s)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}
