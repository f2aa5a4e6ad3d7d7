package traverse

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestLogVisitsEmitsPerExpansion(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	result, err := Traverse("a", goalIs("d"), listNeighbors(chainEdges),
		WithWeight[string](func(string, string) float64 { return 1 }),
		WithVisit[string](LogVisits[string](logger)))
	is.NoErr(err)
	is.True(result.Found)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	is.Equal(len(lines), 4) // a, b, c and the goal pop
	is.True(strings.Contains(lines[0], `"node":"a"`))
	is.True(strings.Contains(lines[3], `"node":"d"`))
	is.True(strings.Contains(lines[3], `"depth":4`))
}

func TestLogVisitsQuietAboveDebug(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)

	_, err := Traverse("a", goalIs("d"), listNeighbors(chainEdges),
		WithVisit[string](LogVisits[string](logger)))
	is.NoErr(err)
	is.Equal(buf.Len(), 0)
}
