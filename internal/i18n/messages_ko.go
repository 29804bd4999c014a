package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Korean

	// Setup
	message.SetString(lang, "names.prompt", "게임에 참여할 사람의 이름을 입력하세요.(쉼표 기준으로 분리)")
	message.SetString(lang, "names.invalid", "이름은 비어 있거나 중복될 수 없습니다. 다시 입력해 주세요.")
	message.SetString(lang, "names.too_many", "최대 %d명까지 참여할 수 있습니다. 다시 입력해 주세요.")
	message.SetString(lang, "wager.prompt", "%s의 배팅 금액은?")
	message.SetString(lang, "wager.invalid", "잘못된 입력입니다. 다시 입력해 주세요.")

	// Deal
	message.SetString(lang, "deal.done", "딜러와 %s에게 2장의 카드를 나누어주었습니다.")
	message.SetString(lang, "dealer.name", "딜러")
	message.SetString(lang, "hand.line", "%s: %s (%d)")

	// Turns
	message.SetString(lang, "turn.prompt", "%s는 한장의 카드를 더 받겠습니까?(예는 y, 아니오는 n)")
	message.SetString(lang, "turn.invalid", "잘못된 입력을 하셨습니다. 다시 입력해주세요.")
	message.SetString(lang, "turn.bust", "플레이어 %s은 21을 초과하였습니다.")
	message.SetString(lang, "dealer.draw", "딜러는 %d이하라 한장의 카드를 더 받았습니다.")
	message.SetString(lang, "dealer.bust", "딜러가 21을 초과했습니다.")

	// Results
	message.SetString(lang, "result.header", "### 최종 수익 ###")
	message.SetString(lang, "result.blackjack", "블랙잭!")
	message.SetString(lang, "result.line", "%s: %s")

	// Ledger
	message.SetString(lang, "ledger.header", "### 누적 수익 ###")
	message.SetString(lang, "ledger.line", "%s: %s (%d판)")
	message.SetString(lang, "ledger.empty", "아직 아무도 플레이하지 않았습니다!")
	message.SetString(lang, "ledger.disabled", "기록 기능이 꺼져 있습니다.")
	message.SetString(lang, "ledger.unknown", "%s의 기록이 없습니다.")

	// Chat
	message.SetString(lang, "chat.welcome", "블랙잭에 오신 것을 환영합니다!\n\n/play 게임 시작\n/stop 게임 중단\n/balance <이름> 플레이어 기록\n/top 순위\n/help 규칙")
	message.SetString(lang, "chat.help", "블랙잭 규칙:\n\n21을 넘지 않으면서 딜러보다 21에 가깝게 만드세요.\n\n2-10은 숫자 그대로, J, Q, K는 10, A는 1 또는 11입니다.\n\n처음 두 장으로 21이 되면 즉시 1.5배를 받습니다.\n딜러는 %d 이하일 때 정확히 한 장을 더 받습니다.\n동점은 플레이어의 승리입니다.")
	message.SetString(lang, "chat.running", "이미 게임이 진행 중입니다.")
	message.SetString(lang, "chat.idle", "진행 중인 게임이 없습니다. /play 로 시작하세요.")
	message.SetString(lang, "chat.stopped", "게임이 중단되었습니다.")
	message.SetString(lang, "chat.busy", "차례를 기다려 주세요.")
	message.SetString(lang, "chat.failed", "게임이 중단되었습니다: %v")
	message.SetString(lang, "chat.error", "오류가 발생했습니다. 잠시 후 다시 시도해 주세요.")
	message.SetString(lang, "chat.hit", "히트")
	message.SetString(lang, "chat.stand", "스탠드")
	message.SetString(lang, "chat.again", "다시 하기")
	message.SetString(lang, "chat.top", "순위")
}
