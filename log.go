package traverse

import "github.com/rs/zerolog"

// LogVisits returns a visit hook that emits one debug event per expansion.
// The path view is materialized only when the logger is recording at debug
// level or below.
func LogVisits[NodeType comparable](logger zerolog.Logger) VisitFunc[NodeType] {
	return func(node NodeType, pathSoFar *Path[NodeType]) {
		if logger.GetLevel() > zerolog.DebugLevel {
			return
		}
		logger.Debug().
			Interface("node", node).
			Int("depth", pathSoFar.Len()).
			Msg("expanding node")
	}
}
