package game

import "fmt"

type SettlementKind int

const (
	// SettlementEarly follows a natural blackjack on the initial deal.
	SettlementEarly SettlementKind = iota
	SettlementDealerBust
	// SettlementDealerBlackjack is a dealer 21 that no player matched.
	SettlementDealerBlackjack
	SettlementFinal
	// SettlementSweep is a final comparison that no player won.
	SettlementSweep
)

func (k SettlementKind) String() string {
	switch k {
	case SettlementEarly:
		return "early"
	case SettlementDealerBust:
		return "dealer_bust"
	case SettlementDealerBlackjack:
		return "dealer_blackjack"
	case SettlementFinal:
		return "final"
	case SettlementSweep:
		return "sweep"
	default:
		return fmt.Sprintf("SettlementKind(%d)", int(k))
	}
}

type Outcome int

const (
	OutcomeLose Outcome = iota
	OutcomeBust
	OutcomeWin
	OutcomeBlackjack
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLose:
		return "lose"
	case OutcomeBust:
		return "bust"
	case OutcomeWin:
		return "win"
	case OutcomeBlackjack:
		return "blackjack"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

func (o Outcome) Won() bool {
	return o == OutcomeWin || o == OutcomeBlackjack
}

// Payout is one player's net result. Amount is positive when the dealer
// pays the player and negative when the wager is forfeited.
type Payout struct {
	Name    string
	Wager   float64
	Score   int
	Cards   []Card
	Outcome Outcome
	Amount  float64
}

type Settlement struct {
	Kind        SettlementKind
	Payouts     []Payout
	DealerScore int
	DealerCards []Card
	// Dealer is the dealer's net, the negated sum of all payouts.
	Dealer float64
}

func newSettlement(kind SettlementKind, dealer *Dealer) *Settlement {
	return &Settlement{
		Kind:        kind,
		DealerScore: dealer.hand.Score(),
		DealerCards: dealer.hand.Cards(),
	}
}

func (s *Settlement) add(p *Player, outcome Outcome, amount float64) {
	s.Payouts = append(s.Payouts, Payout{
		Name:    p.name,
		Wager:   p.wager,
		Score:   p.hand.Score(),
		Cards:   p.hand.Cards(),
		Outcome: outcome,
		Amount:  amount,
	})
	s.Dealer -= amount
}

func (s *Settlement) lose(p *Player) {
	outcome := OutcomeLose
	if p.busted {
		outcome = OutcomeBust
	}
	s.add(p, outcome, -p.wager)
}

// Payout looks up a player's result by name.
func (s *Settlement) Payout(name string) (Payout, bool) {
	for _, p := range s.Payouts {
		if p.Name == name {
			return p, true
		}
	}
	return Payout{}, false
}

func (s *Settlement) Winners() []string {
	var names []string
	for _, p := range s.Payouts {
		if p.Outcome.Won() {
			names = append(names, p.Name)
		}
	}
	return names
}

// earlySettlement pays every two-card 21 at the natural rate and collects
// everyone else's wager. A dealer natural does not push a player natural.
func (r *Round) earlySettlement() *Settlement {
	s := newSettlement(SettlementEarly, r.dealer)
	for _, p := range r.players {
		if p.hand.IsBlackjack() {
			s.add(p, OutcomeBlackjack, p.wager*r.rules.NaturalPayout)
			continue
		}
		s.lose(p)
	}
	return s
}

func (r *Round) dealerBustSettlement() *Settlement {
	s := newSettlement(SettlementDealerBust, r.dealer)
	for _, p := range r.players {
		if p.busted {
			s.lose(p)
			continue
		}
		s.add(p, OutcomeWin, p.wager)
	}
	return s
}

// finalSettlement compares every standing player with the dealer. Ties go
// to the player. A dealer 21 that no player reached takes the whole table.
func (r *Round) finalSettlement() *Settlement {
	dealerScore := r.dealer.hand.Score()

	if dealerScore == Blackjack && !r.anyPlayerAt(Blackjack) {
		s := newSettlement(SettlementDealerBlackjack, r.dealer)
		for _, p := range r.players {
			s.lose(p)
		}
		return s
	}

	s := newSettlement(SettlementFinal, r.dealer)
	for _, p := range r.players {
		if !p.busted && p.hand.Score() >= dealerScore {
			s.add(p, OutcomeWin, p.wager)
			continue
		}
		s.lose(p)
	}

	if len(s.Winners()) == 0 {
		s.Kind = SettlementSweep
	}
	return s
}

func (r *Round) anyPlayerAt(score int) bool {
	for _, p := range r.players {
		if !p.busted && p.hand.Score() == score {
			return true
		}
	}
	return false
}
