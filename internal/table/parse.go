package table

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"blackjack/internal/game"
)

var (
	ErrInvalidNames = errors.New("invalid player names")
	ErrInvalidWager = errors.New("invalid wager")
	ErrInvalidTurn  = errors.New("invalid hit/stand answer")
)

// ParseNames splits a comma separated list of player names. Every name must
// be non-empty and appear once.
func ParseNames(line string) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return nil, game.ErrNoPlayers
	}

	parts := strings.Split(line, ",")
	names := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))

	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidNames)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q appears twice", ErrInvalidNames, name)
		}
		seen[name] = true
		names = append(names, name)
	}

	return names, nil
}

func ParseWager(line string) (float64, error) {
	wager, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWager, line)
	}
	if math.IsNaN(wager) || math.IsInf(wager, 0) || wager <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWager, line)
	}
	return wager, nil
}

func ParseTurn(line string) (game.Action, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "h", "hit":
		return game.ActionHit, nil
	case "n", "no", "s", "stand":
		return game.ActionStand, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTurn, line)
	}
}
