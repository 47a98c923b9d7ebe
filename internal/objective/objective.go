// Package objective folds a completed trick into cooperative task
// state and decides whether the objective set has progressed,
// succeeded, or been violated.
package objective

import "github.com/joshreed13/the-crew/internal/cards"

// Task is the obligation that Player wins the trick containing Card.
type Task struct {
	Player int
	Card   cards.Card
}

// TaskObjective is the one concrete Objective variant the core
// supports today. Future variants would live alongside this as
// additional cases dispatched by Apply; the search driver in package
// solver never needs to change to support them.
type TaskObjective struct {
	// Absolute tasks must complete in listed order.
	Absolute []Task
	// Relative tasks must complete in listed order, but only after
	// every Absolute task has completed.
	Relative []Task
	// Anytime tasks may complete in any order, but not while an
	// Absolute task is still pending.
	Anytime []Task
	// Last, if set, must complete on the very last trick of the round,
	// i.e. when no other task remains pending.
	Last *Task
}

// Outcome classifies the result of folding one trick into an
// objective. Success and Failure are distinct cases rather than a
// boolean paired with an object, so a caller can't mistake one for
// the other.
type Outcome int

const (
	// Updated means the objective survived the trick with some tasks
	// still pending; Result.Objective holds the new state.
	Updated Outcome = iota
	// Success means every task is now complete.
	Success
	// Failure means the trick violated the objective; the whole
	// objective set this belongs to can never be satisfied from here.
	Failure
)

// Result is the sum type Apply returns: Updated(objective) | Success |
// Failure. Objective is only meaningful when Outcome == Updated.
type Result struct {
	Outcome   Outcome
	Objective TaskObjective
}

// hasCard reports whether card appears anywhere in played.
func hasCard(played []cards.Card, card cards.Card) bool {
	for _, c := range played {
		if c == card {
			return true
		}
	}
	return false
}

// Apply folds one completed trick (its played cards and the winner's
// global player number) into objective, returning the objective's next
// state. Each bucket is scanned in order: a task's card appearing in
// played completes it only if the trick's winner matches the task's
// player. Completing an Absolute or Relative task while an earlier
// task of its own bucket is still pending, a Relative or Anytime task
// while any Absolute task is still pending, or the Last task while any
// other task is still pending is a violation.
func Apply(o TaskObjective, played []cards.Card, winner int) Result {
	noMoreAll := false
	remainingAbsolute := make([]Task, 0, len(o.Absolute))
	for _, t := range o.Absolute {
		if hasCard(played, t.Card) {
			if noMoreAll {
				return Result{Outcome: Failure}
			}
			if winner != t.Player {
				return Result{Outcome: Failure}
			}
			// task complete; drop it
		} else {
			noMoreAll = true
			remainingAbsolute = append(remainingAbsolute, t)
		}
	}

	noMoreRelative := false
	remainingRelative := make([]Task, 0, len(o.Relative))
	for _, t := range o.Relative {
		if hasCard(played, t.Card) {
			if noMoreAll || noMoreRelative {
				return Result{Outcome: Failure}
			}
			if winner != t.Player {
				return Result{Outcome: Failure}
			}
		} else {
			noMoreRelative = true
			remainingRelative = append(remainingRelative, t)
		}
	}

	remainingAnytime := make([]Task, 0, len(o.Anytime))
	for _, t := range o.Anytime {
		if hasCard(played, t.Card) {
			if noMoreAll {
				return Result{Outcome: Failure}
			}
			if winner != t.Player {
				return Result{Outcome: Failure}
			}
		} else {
			remainingAnytime = append(remainingAnytime, t)
		}
	}

	remainingLast := o.Last
	if o.Last != nil && hasCard(played, o.Last.Card) {
		if len(remainingAbsolute) > 0 || len(remainingRelative) > 0 || len(remainingAnytime) > 0 {
			return Result{Outcome: Failure}
		}
		if winner != o.Last.Player {
			return Result{Outcome: Failure}
		}
		remainingLast = nil
	}

	if len(remainingAbsolute) == 0 && len(remainingRelative) == 0 && len(remainingAnytime) == 0 && remainingLast == nil {
		return Result{Outcome: Success}
	}

	return Result{
		Outcome: Updated,
		Objective: TaskObjective{
			Absolute: remainingAbsolute,
			Relative: remainingRelative,
			Anytime:  remainingAnytime,
			Last:     remainingLast,
		},
	}
}

// Done reports whether the objective has no tasks left at all.
func (o TaskObjective) Done() bool {
	return len(o.Absolute) == 0 && len(o.Relative) == 0 && len(o.Anytime) == 0 && o.Last == nil
}
