// Package play enumerates legal tricks: given a leader-first list of
// hands and a (possibly still undecided) lead suit, it yields every
// legal trick continuation under the must-follow-suit rule.
package play

import (
	"iter"

	"github.com/joshreed13/the-crew/internal/cards"
)

// Turn is one player's contribution to a trick: the card they played
// and their hand with that card removed.
type Turn struct {
	Card cards.Card
	Hand cards.Hand
}

// Play is a completed trick, one Turn per player, in the same
// leader-first rotation as the hands passed to Generate.
type Play []Turn

// Cards returns just the played cards, in play order.
func (p Play) Cards() []cards.Card {
	out := make([]cards.Card, len(p))
	for i, t := range p {
		out[i] = t.Card
	}
	return out
}

// Generate lazily yields every legal Play for hands (hands[0] leads)
// under the partially-established lead suit. A nil leadSuit means the
// first player has not yet chosen a suit to lead.
//
// Cards are tried in the order they appear in each hand, so two calls
// with the same arguments always yield plays in the same order. Being a
// range-over-func iterator, ranging over the result can stop early: the
// caller controls how much of the tree actually gets generated, which
// is what lets the search driver in package solver bail out the
// instant it finds a witness.
func Generate(hands []cards.Hand, leadSuit *cards.Suit) iter.Seq[Play] {
	return func(yield func(Play) bool) {
		generate(hands, leadSuit, nil, yield)
	}
}

// generate does the recursive work. prefix accumulates the Turns
// decided so far; yield is called once per complete Play.
func generate(hands []cards.Hand, leadSuit *cards.Suit, prefix Play, yield func(Play) bool) bool {
	if len(hands) == 0 {
		return yield(append(Play(nil), prefix...))
	}

	hand := hands[0]
	holdingLeadSuit := leadSuit != nil && hand.HasSuit(*leadSuit)

	for _, c := range hand {
		if holdingLeadSuit && c.Suit != *leadSuit {
			continue
		}

		picked := c.Suit
		if leadSuit != nil {
			picked = *leadSuit
		}

		turn := Turn{Card: c, Hand: hand.Without(c)}
		if !generate(hands[1:], &picked, append(prefix, turn), yield) {
			return false
		}
	}
	return true
}
