package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/text/message"
)

const (
	CallbackHit       = "y"
	CallbackStand     = "n"
	CallbackPlayAgain = "play_again"
	CallbackTop       = "top"
)

func TurnKeyboard(p *message.Printer) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👊 "+p.Sprintf("chat.hit"), CallbackHit),
			tgbotapi.NewInlineKeyboardButtonData("✋ "+p.Sprintf("chat.stand"), CallbackStand),
		),
	)
}

func EndGameKeyboard(p *message.Printer) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 "+p.Sprintf("chat.again"), CallbackPlayAgain),
			tgbotapi.NewInlineKeyboardButtonData("🏆 "+p.Sprintf("chat.top"), CallbackTop),
		),
	)
}
