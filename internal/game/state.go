package game

import "fmt"

type Phase int

const (
	PhaseSetup Phase = iota
	PhaseInitialDeal
	PhaseNaturalCheck
	PhaseEarlySettlement
	PhasePlayerTurns
	PhaseDealerTurn
	PhaseDealerBustSettlement
	PhaseFinalSettlement
	PhaseDone
)

var phaseNames = [...]string{
	PhaseSetup:                "setup",
	PhaseInitialDeal:          "initial deal",
	PhaseNaturalCheck:         "natural check",
	PhaseEarlySettlement:      "early settlement",
	PhasePlayerTurns:          "player turns",
	PhaseDealerTurn:           "dealer turn",
	PhaseDealerBustSettlement: "dealer bust settlement",
	PhaseFinalSettlement:      "final settlement",
	PhaseDone:                 "done",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

type Action int

const (
	ActionHit Action = iota
	ActionStand
)

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "hit"
	case ActionStand:
		return "stand"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Decider is asked for every hit/stand decision. The round blocks until it
// answers.
type Decider interface {
	Decide(p *Player, dealer *Dealer) (Action, error)
}

// Reporter receives what happened during a round, in order.
type Reporter interface {
	Dealt(dealer *Dealer, players []*Player)
	Drew(p *Player, c Card)
	Busted(p *Player)
	DealerDrew(d *Dealer, c Card)
	Settled(s *Settlement)
}

type NopReporter struct{}

func (NopReporter) Dealt(*Dealer, []*Player) {}
func (NopReporter) Drew(*Player, Card)       {}
func (NopReporter) Busted(*Player)           {}
func (NopReporter) DealerDrew(*Dealer, Card) {}
func (NopReporter) Settled(*Settlement)      {}

type Rules struct {
	// StandThreshold is the score at or below which the dealer takes
	// exactly one more card.
	StandThreshold int
	// NaturalPayout multiplies the wager of a two-card 21 at the initial check.
	NaturalPayout float64
}

func DefaultRules() Rules {
	return Rules{
		StandThreshold: 16,
		NaturalPayout:  1.5,
	}
}

// Round owns the dealer, the players and the deck for one round.
type Round struct {
	rules    Rules
	deck     Drawer
	dealer   *Dealer
	players  []*Player
	phase    Phase
	reporter Reporter
}

type Option func(*Round)

func WithRules(rules Rules) Option {
	return func(r *Round) {
		r.rules = rules
	}
}

func WithReporter(reporter Reporter) Option {
	return func(r *Round) {
		if reporter != nil {
			r.reporter = reporter
		}
	}
}

func NewRound(deck Drawer, players []*Player, opts ...Option) (*Round, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	if deck == nil {
		panic("game: nil deck")
	}

	r := &Round{
		rules:    DefaultRules(),
		deck:     deck,
		dealer:   NewDealer(),
		players:  append([]*Player(nil), players...),
		phase:    PhaseSetup,
		reporter: NopReporter{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Round) Phase() Phase {
	return r.phase
}

func (r *Round) Dealer() *Dealer {
	return r.dealer
}

func (r *Round) Players() []*Player {
	return append([]*Player(nil), r.players...)
}

// Play runs the round to settlement. A round can be played once; a deck
// error or a decider error aborts it.
func (r *Round) Play(decider Decider) (*Settlement, error) {
	if decider == nil {
		panic("game: nil decider")
	}
	if r.phase != PhaseSetup {
		return nil, ErrRoundFinished
	}

	r.phase = PhaseInitialDeal
	if err := r.deal(); err != nil {
		return nil, r.abort(err)
	}
	r.reporter.Dealt(r.dealer, r.Players())

	r.phase = PhaseNaturalCheck
	if r.hasNatural() {
		r.phase = PhaseEarlySettlement
		return r.settle(r.earlySettlement()), nil
	}

	r.phase = PhasePlayerTurns
	for _, p := range r.players {
		if err := r.playerTurn(p, decider); err != nil {
			return nil, r.abort(err)
		}
	}

	r.phase = PhaseDealerTurn
	if err := r.dealerTurn(); err != nil {
		return nil, r.abort(err)
	}

	if r.dealer.hand.IsBust() {
		r.phase = PhaseDealerBustSettlement
		return r.settle(r.dealerBustSettlement()), nil
	}

	r.phase = PhaseFinalSettlement
	return r.settle(r.finalSettlement()), nil
}

func (r *Round) deal() error {
	if err := r.dealTwo(r.dealer.hand); err != nil {
		return fmt.Errorf("deal to dealer: %w", err)
	}
	for _, p := range r.players {
		if err := r.dealTwo(p.hand); err != nil {
			return fmt.Errorf("deal to %s: %w", p.name, err)
		}
	}
	return nil
}

func (r *Round) dealTwo(h *Hand) error {
	for range 2 {
		if _, err := r.drawInto(h); err != nil {
			return err
		}
	}
	return nil
}

func (r *Round) drawInto(h *Hand) (Card, error) {
	c, err := r.deck.Draw()
	if err != nil {
		return Card{}, err
	}
	h.Add(c)
	return c, nil
}

func (r *Round) hasNatural() bool {
	if r.dealer.hand.IsBlackjack() {
		return true
	}
	for _, p := range r.players {
		if p.hand.IsBlackjack() {
			return true
		}
	}
	return false
}

func (r *Round) playerTurn(p *Player, decider Decider) error {
	for !p.hand.IsBust() {
		action, err := decider.Decide(p, r.dealer)
		if err != nil {
			return fmt.Errorf("decision for %s: %w", p.name, err)
		}

		switch action {
		case ActionStand:
			return nil
		case ActionHit:
			c, err := r.drawInto(p.hand)
			if err != nil {
				return fmt.Errorf("hit for %s: %w", p.name, err)
			}
			r.reporter.Drew(p, c)
		default:
			return fmt.Errorf("decision for %s: unknown %v", p.name, action)
		}
	}

	p.busted = true
	r.reporter.Busted(p)
	return nil
}

// dealerTurn draws at most one card; the dealer never keeps drawing to 17.
func (r *Round) dealerTurn() error {
	if !r.dealer.ShouldDraw(r.rules.StandThreshold) {
		return nil
	}
	c, err := r.drawInto(r.dealer.hand)
	if err != nil {
		return fmt.Errorf("dealer draw: %w", err)
	}
	r.reporter.DealerDrew(r.dealer, c)
	return nil
}

func (r *Round) settle(s *Settlement) *Settlement {
	r.phase = PhaseDone
	r.reporter.Settled(s)
	return s
}

func (r *Round) abort(err error) error {
	r.phase = PhaseDone
	return err
}
