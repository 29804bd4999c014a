package game

const (
	Blackjack = 21
	aceBonus  = 10
)

// CalculateScore returns the best total not above 21, promoting Aces from 1
// to 11 while that keeps the hand alive. When every reading busts the
// all-Aces-as-1 sum is returned.
func CalculateScore(cards []Card) int {
	score := 0
	aces := 0

	for _, card := range cards {
		score += card.BaseScore()
		if card.Rank == Ace {
			aces++
		}
	}

	for aces > 0 && score+aceBonus <= Blackjack {
		score += aceBonus
		aces--
	}

	return score
}

func IsBlackjack(cards []Card) bool {
	return len(cards) == 2 && CalculateScore(cards) == Blackjack
}

func IsBust(cards []Card) bool {
	return CalculateScore(cards) > Blackjack
}
