package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Setup
	message.SetString(lang, "names.prompt", "Enter the names of the players (comma separated).")
	message.SetString(lang, "names.invalid", "Player names must be non-empty and distinct. Please enter them again.")
	message.SetString(lang, "names.too_many", "At most %d players can sit at the table. Please enter them again.")
	message.SetString(lang, "wager.prompt", "How much does %s wager?")
	message.SetString(lang, "wager.invalid", "Invalid wager, please enter a positive number.")

	// Deal
	message.SetString(lang, "deal.done", "Dealt two cards to the dealer and %s.")
	message.SetString(lang, "dealer.name", "Dealer")
	message.SetString(lang, "hand.line", "%s: %s (%d)")

	// Turns
	message.SetString(lang, "turn.prompt", "%s, take another card? (y/n)")
	message.SetString(lang, "turn.invalid", "Invalid input, please answer y or n.")
	message.SetString(lang, "turn.bust", "%s went over 21.")
	message.SetString(lang, "dealer.draw", "The dealer has %d or less and takes one more card.")
	message.SetString(lang, "dealer.bust", "The dealer went over 21.")

	// Results
	message.SetString(lang, "result.header", "### Final results ###")
	message.SetString(lang, "result.blackjack", "Blackjack!")
	message.SetString(lang, "result.line", "%s: %s")

	// Ledger
	message.SetString(lang, "ledger.header", "### Running balances ###")
	message.SetString(lang, "ledger.line", "%s: %s after %d rounds")
	message.SetString(lang, "ledger.empty", "Nobody has played yet!")
	message.SetString(lang, "ledger.disabled", "The ledger is disabled.")
	message.SetString(lang, "ledger.unknown", "%s has not played yet.")

	// Chat
	message.SetString(lang, "chat.welcome", "Welcome to Blackjack!\n\n/play to start a round\n/stop to leave the table\n/balance <name> for a player's record\n/top for the leaderboard\n/help for the rules")
	message.SetString(lang, "chat.help", "Blackjack rules:\n\nGet closer to 21 than the dealer without going over.\n\n2-10 count their face value, J, Q and K count 10, A counts 1 or 11.\n\nA two-card 21 on the deal ends the round at once and pays 1.5x.\nThe dealer takes exactly one card on %d or less.\nTies go to the player.")
	message.SetString(lang, "chat.running", "A round is already running at this table.")
	message.SetString(lang, "chat.idle", "No round is running. Use /play to start one.")
	message.SetString(lang, "chat.stopped", "The round was abandoned.")
	message.SetString(lang, "chat.busy", "Please wait for your turn.")
	message.SetString(lang, "chat.failed", "The round was aborted: %v")
	message.SetString(lang, "chat.error", "Something went wrong, please try again later.")
	message.SetString(lang, "chat.hit", "Hit")
	message.SetString(lang, "chat.stand", "Stand")
	message.SetString(lang, "chat.again", "Play again")
	message.SetString(lang, "chat.top", "Leaderboard")
}
