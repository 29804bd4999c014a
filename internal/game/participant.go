package game

import (
	"fmt"
	"math"
	"strings"
)

type Role int

const (
	RoleDealer Role = iota
	RolePlayer
)

// Participant is what the dealer and the players have in common.
type Participant interface {
	Name() string
	Role() Role
	Hand() *Hand
}

var (
	_ Participant = (*Dealer)(nil)
	_ Participant = (*Player)(nil)
)

const DealerName = "dealer"

type Dealer struct {
	hand *Hand
}

func NewDealer() *Dealer {
	return &Dealer{hand: NewHand()}
}

func (d *Dealer) Name() string { return DealerName }
func (d *Dealer) Role() Role   { return RoleDealer }
func (d *Dealer) Hand() *Hand  { return d.hand }

// ShouldDraw reports whether the dealer must take a card at this threshold.
func (d *Dealer) ShouldDraw(threshold int) bool {
	return d.hand.Score() <= threshold
}

type Player struct {
	name   string
	wager  float64
	hand   *Hand
	busted bool
}

func NewPlayer(name string, wager float64) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if math.IsNaN(wager) || math.IsInf(wager, 0) || wager <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWager, wager)
	}

	return &Player{
		name:  name,
		wager: wager,
		hand:  NewHand(),
	}, nil
}

func (p *Player) Name() string   { return p.name }
func (p *Player) Role() Role     { return RolePlayer }
func (p *Player) Hand() *Hand    { return p.hand }
func (p *Player) Wager() float64 { return p.wager }
func (p *Player) Busted() bool   { return p.busted }
