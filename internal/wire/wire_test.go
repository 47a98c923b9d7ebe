package wire

import (
	"testing"

	"github.com/joshreed13/the-crew/internal/solver"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func validRequest() Request {
	return Request{
		Hands: [][]string{
			{"B7"}, {"M7"}, {"B8"}, {"B3"},
		},
		Tasks: []TaskJSON{
			{Type: "anytime", Card: strp("B3"), PlayerNum: intp(2)},
		},
		CurrLeader: 0,
	}
}

func TestValidateAcceptsWellFormedRequest(t *testing.T) {
	if errs := Validate(validRequest()); len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
}

func TestValidateCatchesDuplicateCard(t *testing.T) {
	req := validRequest()
	req.Hands[1] = []string{"B7"}
	errs := Validate(req)
	if len(errs) == 0 {
		t.Fatalf("expected a duplicate-card error")
	}
}

func TestValidateCatchesHandLengthMismatch(t *testing.T) {
	req := validRequest()
	req.Hands[1] = []string{"M7", "M6"}
	errs := Validate(req)
	if len(errs) == 0 {
		t.Fatalf("expected a hand-length-mismatch error")
	}
}

func TestValidateCatchesUnknownTaskType(t *testing.T) {
	req := validRequest()
	req.Tasks[0].Type = "whenever"
	errs := Validate(req)
	if len(errs) == 0 {
		t.Fatalf("expected an unknown-task_type error")
	}
}

func TestValidateCatchesTaskCardNotInAnyHand(t *testing.T) {
	req := validRequest()
	req.Tasks[0].Card = strp("G9")
	errs := Validate(req)
	if len(errs) == 0 {
		t.Fatalf("expected a card-not-in-any-hand error")
	}
}

func TestValidateCatchesCurrLeaderOutOfRange(t *testing.T) {
	req := validRequest()
	req.CurrLeader = 4
	errs := Validate(req)
	if len(errs) == 0 {
		t.Fatalf("expected a curr_leader-out-of-range error")
	}
}

func TestValidateCatchesDuplicateOrderWithinBucket(t *testing.T) {
	req := validRequest()
	req.Tasks = []TaskJSON{
		{Type: "absolute", Order: 0, Card: strp("B3"), PlayerNum: intp(2)},
		{Type: "absolute", Order: 0, Card: strp("B7"), PlayerNum: intp(0)},
	}
	errs := Validate(req)
	if len(errs) == 0 {
		t.Fatalf("expected a duplicate-order error")
	}
}

func TestValidateCatchesSecondLastTask(t *testing.T) {
	req := validRequest()
	req.Tasks = []TaskJSON{
		{Type: "last", Card: strp("B3"), PlayerNum: intp(2)},
		{Type: "last", Card: strp("B7"), PlayerNum: intp(0)},
	}
	errs := Validate(req)
	if len(errs) == 0 {
		t.Fatalf("expected a second-last-task error")
	}
}

func TestToStateBuildsSolvableState(t *testing.T) {
	state, err := ToState(validRequest())
	if err != nil {
		t.Fatalf("ToState: %v", err)
	}
	if len(state.Hands) != 4 {
		t.Fatalf("got %d hands, want 4", len(state.Hands))
	}
	if len(state.Objectives) != 1 || len(state.Objectives[0].Anytime) != 1 {
		t.Fatalf("expected one objective with one anytime task, got %+v", state.Objectives)
	}
}

func TestToStateOrdersAbsoluteAndRelativeBuckets(t *testing.T) {
	req := validRequest()
	req.Tasks = []TaskJSON{
		{Type: "absolute", Order: 1, Card: strp("B7"), PlayerNum: intp(0)},
		{Type: "absolute", Order: 0, Card: strp("M7"), PlayerNum: intp(1)},
	}
	state, err := ToState(req)
	if err != nil {
		t.Fatalf("ToState: %v", err)
	}
	abs := state.Objectives[0].Absolute
	if len(abs) != 2 || abs[0].Card.String() != "M7" || abs[1].Card.String() != "B7" {
		t.Fatalf("absolute bucket not ordered by Order field: %+v", abs)
	}
}

func TestFromWitnessRendersCardStrings(t *testing.T) {
	state, err := ToState(validRequest())
	if err != nil {
		t.Fatalf("ToState: %v", err)
	}
	witness, ok := solver.Solve(state)
	if !ok {
		t.Fatalf("expected a witness for the well-formed request")
	}
	rendered := FromWitness(witness)
	if len(rendered) == 0 || len(rendered[0].Cards) != 4 {
		t.Fatalf("got %+v, want one 4-card trick", rendered)
	}
}
