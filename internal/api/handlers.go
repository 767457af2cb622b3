package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/calvinwijaya/blackjack-core/internal/game"
	"github.com/calvinwijaya/blackjack-core/internal/random"
	"github.com/gorilla/mux"
)

// Handlers contains all the API handlers. Nothing is kept between requests.
type Handlers struct {
	defaultDecks int
	maxDecks     int
	newSeed      func() (int64, error)
}

// NewHandlers creates a new instance of Handlers
func NewHandlers(defaultDecks, maxDecks int) *Handlers {
	return &Handlers{
		defaultDecks: defaultDecks,
		maxDecks:     maxDecks,
		newSeed:      random.NewSeed,
	}
}

// RegisterRoutes registers all API routes
func (h *Handlers) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/hand/score", h.ScoreHand).Methods("POST")
	r.HandleFunc("/api/card/{card}", h.GetCard).Methods("GET")
	r.HandleFunc("/api/shoe/deal", h.Deal).Methods("POST")
}

// response helper function to send JSON responses
func response(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// error response helper function
func errorResponse(w http.ResponseWriter, status int, message string) {
	response(w, status, map[string]string{"error": message})
}

// CardView is the JSON form of a card.
type CardView struct {
	Suit    game.Suit `json:"suit"`
	Rank    game.Rank `json:"rank"`
	Value   int       `json:"value"`
	Label   string    `json:"label"`
	Display string    `json:"display"`
}

func newCardView(c game.Card) CardView {
	return CardView{
		Suit:    c.Suit,
		Rank:    c.Rank,
		Value:   c.Value(),
		Label:   c.String(),
		Display: c.Display(),
	}
}

func newCardViews(cards []game.Card) []CardView {
	views := make([]CardView, len(cards))
	for i, c := range cards {
		views[i] = newCardView(c)
	}
	return views
}

// HandView is the JSON form of an evaluated hand.
type HandView struct {
	Cards     []CardView `json:"cards"`
	Count     int        `json:"count"`
	Score     game.Score `json:"score"`
	Blackjack bool       `json:"blackjack"`
	Split     bool       `json:"split"`
	Soft      bool       `json:"soft"`
	Bust      bool       `json:"bust"`
	Stand     bool       `json:"stand"`
	Upcard    *int       `json:"upcard"`
	Display   string     `json:"display"`
}

func newHandView(hand *game.Hand) HandView {
	score := hand.Score()
	view := HandView{
		Cards:     newCardViews(hand.Cards()),
		Count:     hand.Count(),
		Score:     score,
		Blackjack: hand.HasBlackjack(),
		Split:     hand.HasSplit(),
		Soft:      score.Kind == game.ScoreSoft,
		Bust:      hand.Bust(),
		Stand:     hand.Stand(),
		Display:   hand.String(),
	}
	if v, ok := hand.Upcard(); ok {
		view.Upcard = &v
	}
	return view
}

// ScoreHand evaluates the cards in the request body as one hand
func (h *Handlers) ScoreHand(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cards []string `json:"cards"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cards, err := game.ParseCards(req.Cards)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	response(w, http.StatusOK, newHandView(game.NewHand(cards...)))
}

// GetCard describes a single card given in shorthand
func (h *Handlers) GetCard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	c, err := game.ParseCard(vars["card"])
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	response(w, http.StatusOK, newCardView(c))
}

// DealResponse is returned by Deal.
type DealResponse struct {
	ShoeID    string     `json:"shoeId"`
	Seed      int64      `json:"seed"`
	Decks     int        `json:"decks"`
	Cards     []CardView `json:"cards"`
	Remaining int        `json:"remaining"`
}

// Deal builds a fresh shoe and draws cards from it. The same seed and deck
// count always deal the same cards.
func (h *Handlers) Deal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Decks *int   `json:"decks"`
		Count int    `json:"count"`
		Seed  *int64 `json:"seed"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	decks := h.defaultDecks
	if req.Decks != nil {
		decks = *req.Decks
	}
	if decks < 1 || decks > h.maxDecks {
		errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Decks must be between 1 and %d", h.maxDecks))
		return
	}
	if req.Count < 0 {
		errorResponse(w, http.StatusBadRequest, "Count must not be negative")
		return
	}

	var seed int64
	if req.Seed != nil {
		seed = *req.Seed
	} else {
		s, err := h.newSeed()
		if err != nil {
			log.Printf("Error generating seed: %v", err)
			errorResponse(w, http.StatusInternalServerError, "Failed to generate seed")
			return
		}
		seed = s
	}

	shoe, err := game.NewShoe(decks, game.WithRand(random.New(seed)))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	cards := make([]game.Card, 0, min(req.Count, shoe.Remaining()))
	for i := 0; i < req.Count; i++ {
		c, err := shoe.Draw()
		if errors.Is(err, game.ErrEmptyShoe) {
			errorResponse(w, http.StatusConflict, err.Error())
			return
		}
		if err != nil {
			errorResponse(w, http.StatusInternalServerError, "Failed to draw card")
			return
		}
		cards = append(cards, c)
	}

	response(w, http.StatusOK, DealResponse{
		ShoeID:    shoe.ID,
		Seed:      seed,
		Decks:     shoe.Decks(),
		Cards:     newCardViews(cards),
		Remaining: shoe.Remaining(),
	})
}
