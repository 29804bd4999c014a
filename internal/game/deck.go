package game

import (
	"math/rand/v2"
	"time"
)

// Drawer hands out cards for a single round.
type Drawer interface {
	Draw() (Card, error)
}

// Deck draws from the catalog without replacement. A Deck lives for one
// round; start a new round with a new Deck.
type Deck struct {
	cards []Card
	drawn map[int]struct{}
	rng   *rand.Rand
}

func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}

	cards := Catalog()
	return &Deck{
		cards: cards,
		drawn: make(map[int]struct{}, len(cards)),
		rng:   rng,
	}
}

// Draw picks a uniformly random catalog index and retries until it hits one
// that has not been drawn yet.
func (d *Deck) Draw() (Card, error) {
	if len(d.drawn) >= len(d.cards) {
		return Card{}, ErrDeckExhausted
	}

	for {
		i := d.rng.IntN(len(d.cards))
		if _, seen := d.drawn[i]; seen {
			continue
		}
		d.drawn[i] = struct{}{}
		return d.cards[i], nil
	}
}

func (d *Deck) Remaining() int {
	return len(d.cards) - len(d.drawn)
}
