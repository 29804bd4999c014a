package game

func card(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}

// stackedDeck deals its cards in order.
type stackedDeck struct {
	cards []Card
}

func stack(cards ...Card) *stackedDeck {
	return &stackedDeck{cards: cards}
}

func (d *stackedDeck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// scriptedDecider replays a fixed list of actions per player.
type scriptedDecider struct {
	actions map[string][]Action
	calls   map[string]int
}

func script(actions map[string][]Action) *scriptedDecider {
	return &scriptedDecider{actions: actions, calls: map[string]int{}}
}

func (d *scriptedDecider) Decide(p *Player, _ *Dealer) (Action, error) {
	i := d.calls[p.Name()]
	d.calls[p.Name()]++
	queue := d.actions[p.Name()]
	if i >= len(queue) {
		return ActionStand, nil
	}
	return queue[i], nil
}

func mustPlayer(name string, wager float64) *Player {
	p, err := NewPlayer(name, wager)
	if err != nil {
		panic(err)
	}
	return p
}
