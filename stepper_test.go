package traverse

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestStepperMatchesTraverse(t *testing.T) {
	is := is.New(t)
	edges := map[string][]string{
		"s": {"x", "p"},
		"x": {"y"},
		"y": {"g"},
		"p": {"q"},
		"q": {"g"},
	}
	costs := map[[2]string]float64{
		{"s", "x"}: 3, {"x", "y"}: 3, {"y", "g"}: 3,
		{"s", "p"}: 1, {"p", "q"}: 2, {"q", "g"}: 1,
	}
	weight := WithWeight[string](func(from, to string) float64 { return costs[[2]string{from, to}] })

	want, err := Traverse("s", goalIs("g"), listNeighbors(edges), weight)
	is.NoErr(err)

	stepper := NewStepper(context.Background(), "s", goalIs("g"), listNeighbors(edges), weight)
	defer stepper.Close()

	var last StepSnapshot[string]
	for {
		snapshot, err := stepper.Step()
		is.NoErr(err)
		if snapshot.Done {
			last = snapshot
			break
		}
		is.True(snapshot.StepIndex > 0)
	}
	is.True(last.Found)
	is.Equal(last.Path, want.Path)
	is.Equal(stepper.Score(), want.Score)
}

func TestStepperSnapshotsExposeState(t *testing.T) {
	is := is.New(t)
	stepper := NewStepper(context.Background(), "a", goalIs("d"), listNeighbors(chainEdges),
		WithWeight[string](func(string, string) float64 { return 1 }))
	defer stepper.Close()

	first, err := stepper.Step()
	is.NoErr(err)
	is.Equal(first.Current, "a")
	is.Equal(first.StepIndex, 1)
	is.True(first.Open["b"])
	is.Equal(first.CameFrom["b"], "a")

	// Snapshot maps are copies; mutating them must not disturb the search.
	first.CameFrom["b"] = "z"
	second, err := stepper.Step()
	is.NoErr(err)
	is.Equal(second.Current, "b")
	is.Equal(second.CameFrom["b"], "a")
}

func TestStepperExhaustion(t *testing.T) {
	is := is.New(t)
	stepper := NewStepper(context.Background(), "a", goalIs("missing"), listNeighbors(chainEdges))
	defer stepper.Close()

	var done StepSnapshot[string]
	for {
		snapshot, err := stepper.Step()
		is.NoErr(err)
		if snapshot.Done {
			done = snapshot
			break
		}
	}
	is.True(!done.Found)
	is.Equal(len(done.Path), 0)

	// Stepping past the end keeps reporting done.
	again, err := stepper.Step()
	is.NoErr(err)
	is.True(again.Done)
	is.True(!again.Found)
}

func TestStepperCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stepper := NewStepper(ctx, "a", goalIs("d"), listNeighbors(chainEdges))
	defer stepper.Close()

	cancel()
	_, err := stepper.Step()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStepperNilCallbacks(t *testing.T) {
	stepper := NewStepper[string](context.Background(), "a", nil, listNeighbors(chainEdges))
	defer stepper.Close()
	_, err := stepper.Step()
	assert.ErrorIs(t, err, ErrNilGoal)

	stepper = NewStepper[string](context.Background(), "a", goalIs("d"), nil)
	defer stepper.Close()
	_, err = stepper.Step()
	assert.ErrorIs(t, err, ErrNilNeighbors)
}
