package bot

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"blackjack/internal/config"
	"blackjack/internal/database"
	"blackjack/internal/game"
	"blackjack/internal/player"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Language:             "en",
		MaxPlayers:           7,
		BlackjackPays:        1.5,
		DealerStandThreshold: 16,
	}
}

type stackedDeck struct {
	cards []game.Card
}

func (d *stackedDeck) Draw() (game.Card, error) {
	if len(d.cards) == 0 {
		return game.Card{}, game.ErrDeckExhausted
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// gatedDeck holds the draw after the first n cards until gate is closed.
type gatedDeck struct {
	stackedDeck
	gate chan struct{}
	n    int
}

func (d *gatedDeck) Draw() (game.Card, error) {
	if d.n == 0 {
		<-d.gate
	}
	d.n--
	return d.stackedDeck.Draw()
}

func chatMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{Text: text, Chat: &tgbotapi.Chat{ID: 7}}
}

func TestPlayRoundOverChat(t *testing.T) {
	db, err := database.New(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	defer db.Close()
	repo := player.NewRepository(db.DB)

	fs := newFakeSender()
	h := NewHandler(fs, testConfig(), repo)
	h.newDeck = func() game.Drawer {
		return &stackedDeck{cards: []game.Card{
			{Rank: game.Ten, Suit: game.Spades}, {Rank: game.Nine, Suit: game.Diamonds},
			{Rank: game.Five, Suit: game.Clubs}, {Rank: game.Six, Suit: game.Diamonds},
			{Rank: game.Nine, Suit: game.Spades},
		}}
	}

	h.HandleMessage(chatMessage("/play"))
	fs.waitFor(t, "Enter the names of the players")

	h.HandleMessage(chatMessage("/play"))
	fs.waitFor(t, "A round is already running")

	h.HandleMessage(chatMessage("Bo"))
	fs.waitFor(t, "How much does Bo wager?")

	h.HandleMessage(chatMessage("50"))
	fs.waitFor(t, "Bo, take another card?")

	h.HandleCallback(&tgbotapi.CallbackQuery{ID: "1", Data: CallbackHit, Message: chatMessage("")})
	fs.waitFor(t, "Bo, take another card?")

	h.HandleCallback(&tgbotapi.CallbackQuery{ID: "2", Data: CallbackStand, Message: chatMessage("")})
	end := fs.waitFor(t, "Bo: +50")
	_, ok := end.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	assert.True(t, ok)

	assert.Eventually(t, func() bool { return h.tables.Get(7) == nil }, time.Second, 10*time.Millisecond)

	bo, err := repo.Get("Bo")
	require.NoError(t, err)
	assert.Equal(t, 50.0, bo.Balance)

	h.HandleMessage(chatMessage("/balance Bo"))
	fs.waitFor(t, "Bo: +50 after 1 rounds")

	h.HandleMessage(chatMessage("/top"))
	fs.waitFor(t, "🥇 Bo +50")
}

func TestInputWithoutPromptIsTurnedAway(t *testing.T) {
	fs := newFakeSender()
	h := NewHandler(fs, testConfig(), nil)
	gate := make(chan struct{})
	h.newDeck = func() game.Drawer {
		return &gatedDeck{gate: gate, n: 4, stackedDeck: stackedDeck{cards: []game.Card{
			{Rank: game.Ten, Suit: game.Spades}, {Rank: game.Nine, Suit: game.Diamonds},
			{Rank: game.Two, Suit: game.Clubs}, {Rank: game.Three, Suit: game.Diamonds},
			{Rank: game.Two, Suit: game.Spades}, {Rank: game.Two, Suit: game.Hearts},
		}}}
	}

	h.HandleMessage(chatMessage("/play"))
	fs.waitFor(t, "Enter the names of the players")
	h.HandleMessage(chatMessage("Bo"))
	fs.waitFor(t, "How much does Bo wager?")
	h.HandleMessage(chatMessage("50"))
	fs.waitFor(t, "Bo, take another card?")

	h.HandleCallback(&tgbotapi.CallbackQuery{ID: "1", Data: CallbackHit, Message: chatMessage("")})

	// The hit is still being dealt, so a second tap answers nothing.
	h.HandleMessage(chatMessage(CallbackHit))
	fs.waitFor(t, "Please wait for your turn.")

	close(gate)
	fs.waitFor(t, "Bo: 2♣, 3♦, 2♠ (7)")

	h.HandleCallback(&tgbotapi.CallbackQuery{ID: "2", Data: CallbackStand, Message: chatMessage("")})
	end := fs.waitFor(t, "Bo: -50")
	assert.Contains(t, end.Text, "Bo: 2♣, 3♦, 2♠ (7)")
	assert.NotContains(t, end.Text, "2♥")
}

func TestChatQueuesKeepOrder(t *testing.T) {
	q := newChatQueues()

	var mu sync.Mutex
	got := map[int64][]int{}
	var wg sync.WaitGroup
	for i := range 50 {
		for _, chat := range []int64{1, 2} {
			wg.Add(1)
			q.Do(chat, func() {
				defer wg.Done()
				mu.Lock()
				got[chat] = append(got[chat], i)
				mu.Unlock()
			})
		}
	}
	wg.Wait()

	for _, chat := range []int64{1, 2} {
		require.Len(t, got[chat], 50)
		for i, v := range got[chat] {
			assert.Equal(t, i, v)
		}
	}
}

func TestStopAbandonsRound(t *testing.T) {
	fs := newFakeSender()
	h := NewHandler(fs, testConfig(), nil)

	h.HandleMessage(chatMessage("/stop"))
	fs.waitFor(t, "No round is running")

	h.HandleMessage(chatMessage("/play"))
	fs.waitFor(t, "Enter the names of the players")

	h.HandleMessage(chatMessage("/stop"))
	fs.waitFor(t, "The round was abandoned.")
	assert.Nil(t, h.tables.Get(7))
}

func TestLedgerDisabled(t *testing.T) {
	fs := newFakeSender()
	h := NewHandler(fs, testConfig(), nil)

	h.HandleMessage(chatMessage("/top"))
	fs.waitFor(t, "The ledger is disabled.")

	h.HandleMessage(chatMessage("/balance Bo"))
	fs.waitFor(t, "The ledger is disabled.")
}

func TestKoreanUser(t *testing.T) {
	fs := newFakeSender()
	h := NewHandler(fs, testConfig(), nil)

	msg := chatMessage("/help")
	msg.From = &tgbotapi.User{LanguageCode: "ko"}
	h.HandleMessage(msg)
	fs.waitFor(t, "블랙잭 규칙")
}

func TestDispatch(t *testing.T) {
	fs := newFakeSender()
	b := &Bot{handler: NewHandler(fs, testConfig(), nil), chats: newChatQueues()}

	b.dispatch(tgbotapi.Update{Message: chatMessage("/start")})
	fs.waitFor(t, "Welcome to Blackjack!")

	b.dispatch(tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{ID: "1", Data: CallbackHit, Message: chatMessage("")}})
	b.dispatch(tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{ID: "2", Data: CallbackTop, Message: chatMessage("")}})
	fs.waitFor(t, "The ledger is disabled.")
}
