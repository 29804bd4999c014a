package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	cards := Catalog()
	assert.Len(t, cards, 52)

	seen := map[Card]bool{}
	for _, c := range cards {
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
}

func TestCardBaseScore(t *testing.T) {
	tests := []struct {
		rank     Rank
		expected int
	}{
		{Ace, 1},
		{Two, 2},
		{Seven, 7},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
	}

	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, card(tt.rank, Hearts).BaseScore())
		})
	}
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♣", card(Ace, Clubs).String())
	assert.Equal(t, "10♠", card(Ten, Spades).String())
	assert.Equal(t, "K♥", card(King, Hearts).String())
}
