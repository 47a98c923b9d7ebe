// Package solver implements the search driver: a depth-first recursion
// that chains legal-play enumeration, trick evaluation, and objective
// folding to find a playable sequence of tricks satisfying a set of
// cooperative task objectives.
package solver

import (
	"context"

	"github.com/joshreed13/the-crew/internal/cards"
	"github.com/joshreed13/the-crew/internal/objective"
	"github.com/joshreed13/the-crew/internal/play"
	"github.com/joshreed13/the-crew/internal/trick"
)

// State is the transient (hands, objectives, leaderIndex) tuple the
// recursion consumes.
type State struct {
	Hands      []cards.Hand
	Objectives []objective.TaskObjective
	Leader     int
}

// Witness is an explicit sequence of tricks proving an objective set is
// satisfiable from a given initial position. Each Play is recorded in
// that trick's own leader-first rotation.
type Witness []play.Play

// Solve runs the sequential search driver from state and returns a
// witness, or ok=false if no legal sequence of plays satisfies every
// objective.
func Solve(state State) (Witness, bool) {
	return solveStep(context.Background(), state.Hands, state.Objectives, state.Leader)
}

// solveStep is the recursive driver shared by the sequential entry
// point and every parallel worker in the root-level fan-out.
func solveStep(ctx context.Context, hands []cards.Hand, objectives []objective.TaskObjective, leader int) (Witness, bool) {
	n := len(hands)
	rotated := rotateToLeader(hands, leader)

	for p := range play.Generate(rotated, nil) {
		if ctx.Err() != nil {
			return nil, false
		}
		if witness, ok := tryPlay(ctx, leader, n, objectives, p); ok {
			return witness, true
		}
	}
	return nil, false
}

// tryPlay folds one candidate Play through every objective and, if it
// survives, recurses on the post-trick state.
func tryPlay(ctx context.Context, leader, n int, objectives []objective.TaskObjective, p play.Play) (Witness, bool) {
	playedCards := p.Cards()
	winnerOffset := trick.WinnerIndex(playedCards)
	winner := (leader + winnerOffset) % n

	survivors := make([]objective.TaskObjective, 0, len(objectives))
	for _, o := range objectives {
		res := objective.Apply(o, playedCards, winner)
		switch res.Outcome {
		case objective.Failure:
			return nil, false
		case objective.Success:
			// task set fully drained; drop from the set we thread forward
		case objective.Updated:
			survivors = append(survivors, res.Objective)
		default:
			panic("solver: unrecognized objective outcome")
		}
	}

	if len(survivors) == 0 {
		return Witness{p}, true
	}

	remainingLeaderFirst := make([]cards.Hand, n)
	for i, t := range p {
		remainingLeaderFirst[i] = t.Hand
	}
	remainingGlobal := unrotateFromLeader(remainingLeaderFirst, leader)

	rest, ok := solveStep(ctx, remainingGlobal, survivors, winner)
	if !ok {
		return nil, false
	}
	return append(Witness{p}, rest...), true
}

// rotateToLeader returns hands reordered so leader's hand comes first,
// the frame package play's enumerator expects.
func rotateToLeader(hands []cards.Hand, leader int) []cards.Hand {
	n := len(hands)
	out := make([]cards.Hand, n)
	for i := range out {
		out[i] = hands[(leader+i)%n]
	}
	return out
}

// unrotateFromLeader is rotateToLeader's inverse: it takes hands in a
// leader-first frame and returns them indexed by global player number.
func unrotateFromLeader(hands []cards.Hand, leader int) []cards.Hand {
	n := len(hands)
	out := make([]cards.Hand, n)
	for i, h := range hands {
		out[(leader+i)%n] = h
	}
	return out
}
