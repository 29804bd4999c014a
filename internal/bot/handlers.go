package bot

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"blackjack/internal/config"
	"blackjack/internal/game"
	"blackjack/internal/i18n"
	"blackjack/internal/player"
	"blackjack/internal/table"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/text/message"
)

type Handler struct {
	bot     sender
	cfg     *config.Config
	players player.Repository
	tables  *tables
	newDeck func() game.Drawer
}

func NewHandler(bot sender, cfg *config.Config, repo player.Repository) *Handler {
	return &Handler{
		bot:     bot,
		cfg:     cfg,
		players: repo,
		tables:  newTables(),
	}
}

// ============== HELPERS ==============

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}

// printer speaks the user's Telegram language when we have a catalog for it.
func (h *Handler) printer(u *tgbotapi.User) *message.Printer {
	lang := h.cfg.Language
	if u != nil && u.LanguageCode != "" {
		lang = u.LanguageCode
	}
	return i18n.Printer(i18n.ResolveTag(lang))
}

// ============== COMMANDS ==============

func (h *Handler) HandleStart(chatID int64, p *message.Printer) {
	h.send(chatID, p.Sprintf("chat.welcome"))
}

func (h *Handler) HandleHelp(chatID int64, p *message.Printer) {
	h.send(chatID, p.Sprintf("chat.help", h.cfg.DealerStandThreshold))
}

func (h *Handler) HandleBalance(chatID int64, p *message.Printer, name string) {
	if h.players == nil {
		h.send(chatID, p.Sprintf("ledger.disabled"))
		return
	}

	rec, err := h.players.Get(name)
	if errors.Is(err, player.ErrNotFound) {
		h.send(chatID, p.Sprintf("ledger.unknown", name))
		return
	}
	if err != nil {
		log.Printf("Failed to get player %q: %v", name, err)
		h.send(chatID, p.Sprintf("chat.error"))
		return
	}

	h.send(chatID, fmt.Sprintf("%s\n%s (%.1f%%)",
		p.Sprintf("ledger.header"),
		p.Sprintf("ledger.line", rec.Name, table.FormatAmount(rec.Balance), rec.Games),
		rec.WinRate()))
}

func (h *Handler) HandleTop(chatID int64, p *message.Printer) {
	if h.players == nil {
		h.send(chatID, p.Sprintf("ledger.disabled"))
		return
	}

	stats, err := h.players.GetTopByBalance(10)
	if err != nil {
		log.Printf("Failed to load leaderboard: %v", err)
		h.send(chatID, p.Sprintf("chat.error"))
		return
	}

	if len(stats) == 0 {
		h.send(chatID, p.Sprintf("ledger.empty"))
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 " + p.Sprintf("chat.top") + "\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, s := range stats {
		medal := fmt.Sprintf("%d.", i+1)
		if i < 3 {
			medal = medals[i]
		}
		sb.WriteString(fmt.Sprintf("%s %s %s 💰 | %d (%.0f%%)\n",
			medal, s.Name, table.FormatAmount(s.Balance), s.Games, s.WinRate))
	}

	h.send(chatID, sb.String())
}

// HandlePlay opens a table in the chat and runs one round on it in the
// background. Later messages in the chat feed the round's prompts.
func (h *Handler) HandlePlay(chatID int64, p *message.Printer) {
	cio := newChatIO(chatID, h.bot, TurnKeyboard(p))
	if !h.tables.Open(chatID, cio) {
		h.send(chatID, p.Sprintf("chat.running"))
		return
	}

	go h.runTable(chatID, cio, p)
}

func (h *Handler) HandleStop(chatID int64, p *message.Printer) {
	cio := h.tables.Get(chatID)
	if cio == nil {
		h.send(chatID, p.Sprintf("chat.idle"))
		return
	}

	h.tables.Delete(chatID, cio)
	cio.Close()
	h.send(chatID, p.Sprintf("chat.stopped"))
}

func (h *Handler) runTable(chatID int64, cio *chatIO, p *message.Printer) {
	opts := table.Options{
		Rules:      h.cfg.Rules(),
		MaxPlayers: h.cfg.MaxPlayers,
		Printer:    p,
		NewDeck:    h.newDeck,
	}
	if h.players != nil {
		opts.Recorder = h.players
	}

	_, err := table.NewSession(cio, opts).Run()
	h.tables.Delete(chatID, cio)
	cio.Close()

	switch {
	case errors.Is(err, io.EOF):
		// stopped from the chat
	case err != nil:
		log.Printf("Round in chat %d aborted: %v", chatID, err)
		fmt.Fprintln(cio, p.Sprintf("chat.failed", err))
		cio.Flush(nil)
	default:
		h.sendWithKeyboard(chatID, cio.Drain(), EndGameKeyboard(p))
	}
}

// ============== CALLBACKS ==============

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		h.answerCallback(callback.ID, "")
		return
	}

	chatID := callback.Message.Chat.ID
	p := h.printer(callback.From)

	switch callback.Data {
	case CallbackPlayAgain:
		h.answerCallback(callback.ID, "")
		h.HandlePlay(chatID, p)
		return

	case CallbackTop:
		h.answerCallback(callback.ID, "")
		h.HandleTop(chatID, p)
		return
	}

	cio := h.tables.Get(chatID)
	if cio == nil {
		h.answerCallback(callback.ID, p.Sprintf("chat.idle"))
		return
	}

	if !cio.Push(callback.Data) {
		h.answerCallback(callback.ID, p.Sprintf("chat.busy"))
		return
	}
	h.answerCallback(callback.ID, "")
}

// ============== MESSAGES ==============

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}

	chatID := msg.Chat.ID
	p := h.printer(msg.From)
	text := strings.TrimSpace(msg.Text)
	parts := strings.Fields(text)

	if len(parts) == 0 {
		return
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch {
	case cmd == "/start":
		h.HandleStart(chatID, p)
	case cmd == "/help":
		h.HandleHelp(chatID, p)
	case cmd == "/play":
		h.HandlePlay(chatID, p)
	case cmd == "/stop":
		h.HandleStop(chatID, p)
	case cmd == "/balance":
		name := strings.Join(args, " ")
		if name == "" && msg.From != nil {
			name = msg.From.FirstName
		}
		h.HandleBalance(chatID, p, name)
	case cmd == "/top":
		h.HandleTop(chatID, p)
	default:
		cio := h.tables.Get(chatID)
		if cio == nil {
			return
		}
		if !cio.Push(text) {
			h.send(chatID, p.Sprintf("chat.busy"))
		}
	}
}
