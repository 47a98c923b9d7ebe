// Package trick implements card-and-trick arithmetic: finding the best
// card of a suit and deciding who wins a completed trick. None of this
// package touches hands or objectives.
package trick

import "github.com/joshreed13/the-crew/internal/cards"

// WinnerOfSuit returns the highest-ranked card among cards whose suit
// is s, or ok=false if none match.
func WinnerOfSuit(played []cards.Card, s cards.Suit) (best cards.Card, ok bool) {
	for _, c := range played {
		if c.Suit != s {
			continue
		}
		if !ok || c.Rank > best.Rank {
			best = c
			ok = true
		}
	}
	return best, ok
}

// Winner returns the winning card of a completed trick: the highest
// Rocket if any was played, otherwise the highest card of the lead
// suit (the suit of played[0]). played must be non-empty.
func Winner(played []cards.Card) cards.Card {
	if len(played) == 0 {
		panic("trick.Winner: empty trick")
	}
	if trump, ok := WinnerOfSuit(played, cards.Rocket); ok {
		return trump
	}
	lead := played[0].Suit
	winner, ok := WinnerOfSuit(played, lead)
	if !ok {
		// Invariant: everyone either followed suit or trumped, because
		// every player had to play a card.
		panic("trick.Winner: no card of the lead suit was played")
	}
	return winner
}

// WinnerIndex returns the position of the trick's winning card within
// played.
func WinnerIndex(played []cards.Card) int {
	winner := Winner(played)
	for i, c := range played {
		if c == winner {
			return i
		}
	}
	panic("trick.WinnerIndex: winner not found in played cards")
}
