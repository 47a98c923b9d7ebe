// Package wire implements the JSON request/response schema: the
// external boundary between a caller's deal description and the
// solver core.
package wire

import (
	"fmt"
	"sort"

	"github.com/joshreed13/the-crew/internal/cards"
	"github.com/joshreed13/the-crew/internal/objective"
	"github.com/joshreed13/the-crew/internal/play"
	"github.com/joshreed13/the-crew/internal/solver"
)

// Request is the wire-level deal description: N hands, the task set,
// and who leads the next trick.
type Request struct {
	Hands      [][]string `json:"hands"`
	Tasks      []TaskJSON `json:"tasks"`
	CurrLeader int        `json:"curr_leader"`
}

// TaskJSON is one task in wire form. Card and PlayerNum are pointers
// so a missing field is distinguishable from the zero value during
// validation.
type TaskJSON struct {
	Type      string  `json:"task_type"`
	Order     int     `json:"order"`
	Card      *string `json:"card"`
	PlayerNum *int    `json:"player_num"`
}

// PlayJSON is one trick of a witness in wire form.
type PlayJSON struct {
	Cards []string `json:"cards"`
}

// Response is the wire-level solver result.
type Response struct {
	Success  bool       `json:"success"`
	Result   bool       `json:"result"`
	Duration int64      `json:"duration"`
	Witness  []PlayJSON `json:"witness,omitempty"`
}

// ValidationError is one malformation found in a Request. Field names
// the offending JSON path; Message describes the problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

var taskTypes = map[string]bool{
	"absolute": true,
	"relative": true,
	"anytime":  true,
	"last":     true,
}

// Validate checks req for structural and cross-referential
// malformations, accumulating every error found rather than stopping
// at the first.
func Validate(req Request) []ValidationError {
	var errs []ValidationError

	n := len(req.Hands)
	if n == 0 {
		errs = append(errs, ValidationError{Field: "hands", Message: "must have at least one hand"})
		return errs
	}

	allCards := make(map[string]int)
	handLen := -1
	for i, h := range req.Hands {
		if handLen == -1 {
			handLen = len(h)
		} else if len(h) != handLen {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("hands[%d]", i),
				Message: fmt.Sprintf("hand length %d does not match hands[0] length %d", len(h), handLen),
			})
		}
		for j, code := range h {
			if _, err := cards.ParseCard(code); err != nil {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("hands[%d][%d]", i, j),
					Message: err.Error(),
				})
				continue
			}
			allCards[code]++
			if allCards[code] > 1 {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("hands[%d][%d]", i, j),
					Message: fmt.Sprintf("duplicate card %q", code),
				})
			}
		}
	}

	if req.CurrLeader < 0 || req.CurrLeader >= n {
		errs = append(errs, ValidationError{
			Field:   "curr_leader",
			Message: fmt.Sprintf("%d out of range [0, %d)", req.CurrLeader, n),
		})
	}

	orderSeen := map[string]map[int]bool{"absolute": {}, "relative": {}}
	for i, task := range req.Tasks {
		field := fmt.Sprintf("tasks[%d]", i)
		if !taskTypes[task.Type] {
			errs = append(errs, ValidationError{
				Field:   field + ".task_type",
				Message: fmt.Sprintf("unknown task_type %q", task.Type),
			})
			continue
		}
		if task.Card == nil {
			errs = append(errs, ValidationError{Field: field + ".card", Message: "missing"})
			continue
		}
		if _, err := cards.ParseCard(*task.Card); err != nil {
			errs = append(errs, ValidationError{Field: field + ".card", Message: err.Error()})
			continue
		}
		if allCards[*task.Card] == 0 {
			errs = append(errs, ValidationError{
				Field:   field + ".card",
				Message: fmt.Sprintf("card %q does not appear in any hand", *task.Card),
			})
		}
		if task.PlayerNum == nil {
			errs = append(errs, ValidationError{Field: field + ".player_num", Message: "missing"})
		} else if *task.PlayerNum < 0 || *task.PlayerNum >= n {
			errs = append(errs, ValidationError{
				Field:   field + ".player_num",
				Message: fmt.Sprintf("%d out of range [0, %d)", *task.PlayerNum, n),
			})
		}
		if task.Type == "absolute" || task.Type == "relative" {
			if orderSeen[task.Type][task.Order] {
				errs = append(errs, ValidationError{
					Field:   field + ".order",
					Message: fmt.Sprintf("duplicate order %d within %s bucket", task.Order, task.Type),
				})
			}
			orderSeen[task.Type][task.Order] = true
		}
	}

	lastCount := 0
	for _, task := range req.Tasks {
		if task.Type == "last" {
			lastCount++
		}
	}
	if lastCount > 1 {
		errs = append(errs, ValidationError{Field: "tasks", Message: "at most one last task is allowed"})
	}

	return errs
}

// ToState converts a validated Request into the solver.State it
// describes. Callers must run Validate first; ToState does not
// re-check malformation.
func ToState(req Request) (solver.State, error) {
	hands := make([]cards.Hand, len(req.Hands))
	for i, h := range req.Hands {
		hand := make(cards.Hand, len(h))
		for j, code := range h {
			c, err := cards.ParseCard(code)
			if err != nil {
				return solver.State{}, err
			}
			hand[j] = c
		}
		hands[i] = hand
	}

	obj, err := toObjective(req.Tasks)
	if err != nil {
		return solver.State{}, err
	}

	return solver.State{
		Hands:      hands,
		Objectives: []objective.TaskObjective{obj},
		Leader:     req.CurrLeader,
	}, nil
}

func toObjective(tasks []TaskJSON) (objective.TaskObjective, error) {
	type ordered struct {
		order int
		task  objective.Task
	}
	var absolute, relative []ordered
	var anytime []objective.Task
	var last *objective.Task

	for _, tj := range tasks {
		c, err := cards.ParseCard(*tj.Card)
		if err != nil {
			return objective.TaskObjective{}, err
		}
		t := objective.Task{Player: *tj.PlayerNum, Card: c}
		switch tj.Type {
		case "absolute":
			absolute = append(absolute, ordered{tj.Order, t})
		case "relative":
			relative = append(relative, ordered{tj.Order, t})
		case "anytime":
			anytime = append(anytime, t)
		case "last":
			tc := t
			last = &tc
		default:
			return objective.TaskObjective{}, fmt.Errorf("unknown task_type %q", tj.Type)
		}
	}

	sort.Slice(absolute, func(i, j int) bool { return absolute[i].order < absolute[j].order })
	sort.Slice(relative, func(i, j int) bool { return relative[i].order < relative[j].order })

	o := objective.TaskObjective{Anytime: anytime, Last: last}
	for _, a := range absolute {
		o.Absolute = append(o.Absolute, a.task)
	}
	for _, r := range relative {
		o.Relative = append(o.Relative, r.task)
	}
	return o, nil
}

// FromWitness renders a solver.Witness into its wire form.
func FromWitness(w solver.Witness) []PlayJSON {
	out := make([]PlayJSON, len(w))
	for i, p := range w {
		out[i] = PlayJSON{Cards: playCards(p)}
	}
	return out
}

func playCards(p play.Play) []string {
	out := make([]string, len(p))
	for i, t := range p {
		out[i] = t.Card.String()
	}
	return out
}
