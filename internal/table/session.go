package table

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"blackjack/internal/game"
	"blackjack/internal/i18n"

	"golang.org/x/text/message"
)

// Recorder keeps the results of settled rounds.
type Recorder interface {
	RecordRound(s *game.Settlement) (string, error)
}

// DefaultMaxPlayers keeps the initial deal well inside one deck.
const DefaultMaxPlayers = 7

type Options struct {
	Rules      game.Rules
	MaxPlayers int
	Printer    *message.Printer
	Recorder   Recorder
	NewDeck    func() game.Drawer
}

// Session runs one round over a line oriented IO: it reads names, wagers and
// hit/stand answers, re-asking on bad input, and reports every card dealt and
// the final payouts.
type Session struct {
	io         IO
	p          *message.Printer
	rules      game.Rules
	maxPlayers int
	recorder   Recorder
	newDeck    func() game.Drawer
}

func NewSession(io IO, opts Options) *Session {
	s := &Session{
		io:         io,
		p:          opts.Printer,
		rules:      opts.Rules,
		maxPlayers: opts.MaxPlayers,
		recorder:   opts.Recorder,
		newDeck:    opts.NewDeck,
	}

	if s.p == nil {
		s.p = i18n.Printer(i18n.Default())
	}
	if s.rules == (game.Rules{}) {
		s.rules = game.DefaultRules()
	}
	if s.maxPlayers <= 0 {
		s.maxPlayers = DefaultMaxPlayers
	}
	if s.newDeck == nil {
		s.newDeck = func() game.Drawer { return game.NewDeck(nil) }
	}
	return s
}

// Run plays a single round. Bad input is asked for again; only a closed
// input or a broken deck stops the round early.
func (s *Session) Run() (*game.Settlement, error) {
	players, err := s.readPlayers()
	if err != nil {
		return nil, err
	}

	round, err := game.NewRound(s.newDeck(), players,
		game.WithRules(s.rules),
		game.WithReporter(s),
	)
	if err != nil {
		return nil, err
	}

	settlement, err := round.Play(s)
	if err != nil {
		return nil, fmt.Errorf("play round: %w", err)
	}

	if s.recorder != nil {
		if _, err := s.recorder.RecordRound(settlement); err != nil {
			log.Printf("Failed to record round: %v", err)
		}
	}

	return settlement, nil
}

func (s *Session) readPlayers() ([]*game.Player, error) {
	var names []string
	for names == nil {
		s.say("names.prompt")
		line, err := s.io.ReadLine()
		if err != nil {
			return nil, fmt.Errorf("read names: %w", err)
		}

		parsed, err := ParseNames(line)
		switch {
		case err != nil:
			s.say("names.invalid")
		case len(parsed) > s.maxPlayers:
			s.say("names.too_many", s.maxPlayers)
		default:
			names = parsed
		}
	}

	players := make([]*game.Player, 0, len(names))
	for _, name := range names {
		wager, err := s.readWager(name)
		if err != nil {
			return nil, err
		}
		p, err := game.NewPlayer(name, wager)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

func (s *Session) readWager(name string) (float64, error) {
	for {
		s.say("wager.prompt", name)
		line, err := s.io.ReadLine()
		if err != nil {
			return 0, fmt.Errorf("read wager for %s: %w", name, err)
		}

		wager, err := ParseWager(line)
		if err != nil {
			s.say("wager.invalid")
			continue
		}
		return wager, nil
	}
}

// Decide asks the player until a valid answer arrives.
func (s *Session) Decide(p *game.Player, _ *game.Dealer) (game.Action, error) {
	for {
		s.say("turn.prompt", p.Name())
		line, err := s.readChoice()
		if err != nil {
			return 0, err
		}

		action, err := ParseTurn(line)
		if errors.Is(err, ErrInvalidTurn) {
			s.say("turn.invalid")
			continue
		}
		return action, err
	}
}

func (s *Session) readChoice() (string, error) {
	if cr, ok := s.io.(ChoiceReader); ok {
		return cr.ReadChoice()
	}
	return s.io.ReadLine()
}

func (s *Session) Dealt(dealer *game.Dealer, players []*game.Player) {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name()
	}
	s.say("deal.done", strings.Join(names, ", "))
	s.printTable(dealer, players)
}

func (s *Session) Drew(p *game.Player, _ game.Card) {
	s.printHand(p)
}

func (s *Session) Busted(p *game.Player) {
	s.say("turn.bust", p.Name())
}

func (s *Session) DealerDrew(d *game.Dealer, _ game.Card) {
	s.say("dealer.draw", s.rules.StandThreshold)
	s.printHand(d)
}

func (s *Session) Settled(st *game.Settlement) {
	s.line(separator)
	s.printCards(s.p.Sprintf("dealer.name"), st.DealerCards, st.DealerScore)
	for _, pay := range st.Payouts {
		s.printCards(pay.Name, pay.Cards, pay.Score)
	}
	s.line(separator)

	switch st.Kind {
	case game.SettlementEarly:
		s.say("result.blackjack")
	case game.SettlementDealerBust:
		s.say("dealer.bust")
	}

	s.say("result.header")
	for _, pay := range st.Payouts {
		s.say("result.line", pay.Name, FormatAmount(pay.Amount))
	}
	s.say("result.line", s.p.Sprintf("dealer.name"), FormatAmount(st.Dealer))
}

func (s *Session) printTable(dealer *game.Dealer, players []*game.Player) {
	s.line(separator)
	s.printHand(dealer)
	for _, p := range players {
		s.printHand(p)
	}
	s.line(separator)
}

func (s *Session) printHand(p game.Participant) {
	name := p.Name()
	if p.Role() == game.RoleDealer {
		name = s.p.Sprintf("dealer.name")
	}
	s.say("hand.line", name, p.Hand().String(), p.Hand().Score())
}

func (s *Session) printCards(name string, cards []game.Card, score int) {
	s.say("hand.line", name, game.JoinCards(cards), score)
}

func (s *Session) say(key message.Reference, args ...any) {
	s.line(s.p.Sprintf(key, args...))
}

func (s *Session) line(text string) {
	if _, err := fmt.Fprintln(s.io, text); err != nil {
		log.Printf("Failed to write to table: %v", err)
	}
}
