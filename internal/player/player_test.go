package player

import (
	"path/filepath"
	"testing"

	"blackjack/internal/database"
	"blackjack/internal/game"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.DB)
}

func settlement(kind game.SettlementKind, payouts ...game.Payout) *game.Settlement {
	s := &game.Settlement{Kind: kind, DealerScore: 19, Payouts: payouts}
	for _, p := range payouts {
		s.Dealer -= p.Amount
	}
	return s
}

func TestRecordRound(t *testing.T) {
	repo := newRepo(t)

	id, err := repo.RecordRound(settlement(game.SettlementEarly,
		game.Payout{Name: "Amy", Wager: 100, Score: 21, Outcome: game.OutcomeBlackjack, Amount: 150},
		game.Payout{Name: "Bo", Wager: 50, Score: 17, Outcome: game.OutcomeLose, Amount: -50},
	))
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	_, err = repo.RecordRound(settlement(game.SettlementFinal,
		game.Payout{Name: "Amy", Wager: 20, Score: 24, Outcome: game.OutcomeBust, Amount: -20},
	))
	require.NoError(t, err)

	amy, err := repo.Get("Amy")
	require.NoError(t, err)
	assert.Equal(t, 130.0, amy.Balance)
	assert.Equal(t, 2, amy.Games)
	assert.Equal(t, 1, amy.Wins)
	assert.Equal(t, 1, amy.Losses)
	assert.Equal(t, 1, amy.Blackjacks)
	assert.Equal(t, 50.0, amy.WinRate())

	var payouts int
	require.NoError(t, repo.db.QueryRow(`SELECT COUNT(*) FROM payouts WHERE name = 'Amy'`).Scan(&payouts))
	assert.Equal(t, 2, payouts)

	var dealerNet float64
	require.NoError(t, repo.db.QueryRow(`SELECT dealer_net FROM rounds WHERE id = ?`, id).Scan(&dealerNet))
	assert.Equal(t, -100.0, dealerNet)
}

func TestGetUnknownPlayer(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.Get("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetTopByBalance(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.RecordRound(settlement(game.SettlementFinal,
		game.Payout{Name: "Amy", Wager: 10, Outcome: game.OutcomeLose, Amount: -10},
		game.Payout{Name: "Bo", Wager: 30, Outcome: game.OutcomeWin, Amount: 30},
		game.Payout{Name: "Cy", Wager: 5, Outcome: game.OutcomeWin, Amount: 5},
	))
	require.NoError(t, err)

	stats, err := repo.GetTopByBalance(2)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "Bo", stats[0].Name)
	assert.Equal(t, 100.0, stats[0].WinRate)
	assert.Equal(t, "Cy", stats[1].Name)
}

func TestPlayerApply(t *testing.T) {
	p := &Player{Name: "Amy"}
	p.Apply(game.Payout{Outcome: game.OutcomeWin, Amount: 10})
	p.Apply(game.Payout{Outcome: game.OutcomeBust, Amount: -4})

	assert.Equal(t, 6.0, p.Balance)
	assert.Equal(t, 2, p.Games)
	assert.Equal(t, 1, p.Wins)
	assert.Equal(t, 1, p.Losses)
	assert.Equal(t, 0.0, (&Player{}).WinRate())
}
