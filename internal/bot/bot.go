package bot

import (
	"context"
	"log"
	"sync"

	"blackjack/internal/config"
	"blackjack/internal/player"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
	chats   *chatQueues
}

// New logs in to Telegram. repo may be nil when the ledger is disabled.
func New(cfg *config.Config, repo player.Repository) (*Bot, error) {
	if err := cfg.RequireBotToken(); err != nil {
		return nil, err
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:     api,
		handler: NewHandler(api, cfg, repo),
		chats:   newChatQueues(),
	}, nil
}

// Run dispatches updates until ctx is cancelled. Every chat gets its own
// table; chats are handled concurrently, the updates of one chat in the
// order they arrived.
func (b *Bot) Run(ctx context.Context) error {
	log.Printf("Bot started: @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Bot stopping: %v", context.Cause(ctx))
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.dispatch(update)
		}
	}
}

func (b *Bot) dispatch(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		cb := update.CallbackQuery
		b.chats.Do(chatOf(cb.Message), func() { b.handler.HandleCallback(cb) })
	case update.Message != nil:
		msg := update.Message
		b.chats.Do(chatOf(msg), func() { b.handler.HandleMessage(msg) })
	}
}

func chatOf(msg *tgbotapi.Message) int64 {
	if msg == nil || msg.Chat == nil {
		return 0
	}
	return msg.Chat.ID
}

// chatQueues runs the jobs of one chat one after another in submission
// order. A chat's worker exits once its queue is empty.
type chatQueues struct {
	mu     sync.Mutex
	queues map[int64][]func()
}

func newChatQueues() *chatQueues {
	return &chatQueues{queues: make(map[int64][]func())}
}

func (q *chatQueues) Do(chatID int64, job func()) {
	q.mu.Lock()
	pending, running := q.queues[chatID]
	q.queues[chatID] = append(pending, job)
	q.mu.Unlock()

	if !running {
		go q.drain(chatID)
	}
}

func (q *chatQueues) drain(chatID int64) {
	for {
		q.mu.Lock()
		pending := q.queues[chatID]
		if len(pending) == 0 {
			delete(q.queues, chatID)
			q.mu.Unlock()
			return
		}
		job := pending[0]
		q.queues[chatID] = pending[1:]
		q.mu.Unlock()

		job()
	}
}
