package game

import "strings"

// Hand keeps cards in deal order. Order only matters for display.
type Hand struct {
	cards []Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]Card, 0, 10)}
}

func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) Score() int {
	return CalculateScore(h.cards)
}

func (h *Hand) IsBlackjack() bool {
	return IsBlackjack(h.cards)
}

func (h *Hand) IsBust() bool {
	return IsBust(h.cards)
}

func (h *Hand) String() string {
	return JoinCards(h.cards)
}

// JoinCards renders cards as a comma separated list, e.g. "A♣, 10♠".
func JoinCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
