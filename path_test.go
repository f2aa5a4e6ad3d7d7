package traverse

import (
	"testing"

	"github.com/matryer/is"
)

func TestPathMaterializeIsFreshEachCall(t *testing.T) {
	is := is.New(t)
	cameFrom := map[string]string{"b": "a"}
	path := newPath(cameFrom, "b")

	is.Equal(path.Terminal(), "b")
	is.Equal(path.Materialize(), []string{"a", "b"})
	is.Equal(path.Len(), 2)

	// The view holds the live map: a later relaxation shows up on the next
	// materialization.
	cameFrom["a"] = "root"
	is.Equal(path.Materialize(), []string{"root", "a", "b"})
	is.Equal(path.Len(), 3)
}

func TestPathWithoutPredecessors(t *testing.T) {
	is := is.New(t)
	path := newPath(map[int]int{}, 42)
	is.Equal(path.Materialize(), []int{42})
	is.Equal(path.Len(), 1)
}
