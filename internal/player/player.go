package player

import (
	"database/sql"
	"errors"
	"fmt"

	"blackjack/internal/game"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("player not found")

// Player is the running record of everyone who sat down under a name.
type Player struct {
	Name       string
	Balance    float64
	Wins       int
	Losses     int
	Blackjacks int
	Games      int
}

type Stats struct {
	Name    string
	Balance float64
	Wins    int
	Games   int
	WinRate float64
}

type Repository interface {
	RecordRound(s *game.Settlement) (string, error)
	Get(name string) (*Player, error)
	GetTopByBalance(limit int) ([]Stats, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// RecordRound stores a settled round and folds every payout into the
// players' running totals. It returns the new round id.
func (r *SQLiteRepository) RecordRound(s *game.Settlement) (string, error) {
	id := uuid.NewString()

	tx, err := r.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin round: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO rounds (id, kind, dealer_score, dealer_net)
		VALUES (?, ?, ?, ?)
	`, id, s.Kind.String(), s.DealerScore, s.Dealer)
	if err != nil {
		return "", fmt.Errorf("failed to insert round: %w", err)
	}

	for _, pay := range s.Payouts {
		delta := Player{Name: pay.Name}
		delta.Apply(pay)

		_, err = tx.Exec(`
			INSERT INTO players (name, balance, wins, losses, blackjacks, games)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				balance = balance + excluded.balance,
				wins = wins + excluded.wins,
				losses = losses + excluded.losses,
				blackjacks = blackjacks + excluded.blackjacks,
				games = games + excluded.games,
				updated_at = CURRENT_TIMESTAMP
		`, delta.Name, delta.Balance, delta.Wins, delta.Losses, delta.Blackjacks, delta.Games)
		if err != nil {
			return "", fmt.Errorf("failed to update player %s: %w", pay.Name, err)
		}

		_, err = tx.Exec(`
			INSERT INTO payouts (round_id, name, wager, score, outcome, amount)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, pay.Name, pay.Wager, pay.Score, pay.Outcome.String(), pay.Amount)
		if err != nil {
			return "", fmt.Errorf("failed to insert payout for %s: %w", pay.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit round: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) Get(name string) (*Player, error) {
	player := &Player{Name: name}

	err := r.db.QueryRow(`
		SELECT balance, wins, losses, blackjacks, games
		FROM players WHERE name = ?
	`, name).Scan(
		&player.Balance, &player.Wins, &player.Losses,
		&player.Blackjacks, &player.Games,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (r *SQLiteRepository) GetTopByBalance(limit int) ([]Stats, error) {
	rows, err := r.db.Query(`
		SELECT name, balance, wins, games
		FROM players
		WHERE games > 0
		ORDER BY balance DESC, name
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []Stats
	for rows.Next() {
		var s Stats
		if err := rows.Scan(&s.Name, &s.Balance, &s.Wins, &s.Games); err != nil {
			return nil, err
		}
		if s.Games > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Games) * 100
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// Apply folds one round's payout into the record.
func (p *Player) Apply(pay game.Payout) {
	p.Balance += pay.Amount
	p.Games++

	switch pay.Outcome {
	case game.OutcomeBlackjack:
		p.Blackjacks++
		p.Wins++
	case game.OutcomeWin:
		p.Wins++
	default:
		p.Losses++
	}
}

func (p *Player) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Games) * 100
}
