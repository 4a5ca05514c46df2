package navigator

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/katalvlaran/campusnav/core"
)

// StepKind distinguishes the first, intermediate and final instructions.
type StepKind int

const (
	StepStart StepKind = iota
	StepGo
	StepArrive
)

// Step is one turn-by-turn instruction.
type Step struct {
	Kind  StepKind
	Key   string
	Label string
	// Leg is the connection weight from the previous landmark; 0 for StepStart.
	Leg float64
	// Total is the cost travelled so far, Leg included.
	Total float64
}

// String renders the step as shown to a visitor.
func (st Step) String() string {
	switch st.Kind {
	case StepStart:
		return "Start at " + st.Label
	case StepArrive:
		return fmt.Sprintf("Reach %s (%.2f)", st.Label, st.Leg)
	default:
		return fmt.Sprintf("Go to %s (%.2f)", st.Label, st.Leg)
	}
}

// Directions lists the current route as instructions: one StepStart, a
// StepGo per intermediate landmark and a final StepArrive. A
// single-landmark route yields only the StepStart. Nil without a route.
func (s *Session) Directions() []Step {
	if len(s.route) == 0 {
		return nil
	}

	steps := make([]Step, 0, len(s.route))
	total := 0.0
	for i, key := range s.route {
		st := Step{Kind: StepGo, Key: key, Label: s.label(key)}
		switch {
		case i == 0:
			st.Kind = StepStart
		case i == len(s.route)-1:
			st.Kind = StepArrive
		}
		if i > 0 {
			st.Leg = legCost(s.graph, s.route[i-1], key)
		}
		total += st.Leg
		st.Total = total
		steps = append(steps, st)
	}

	return steps
}

func (s *Session) label(key string) string {
	if lm, ok := s.graph.Landmark(key); ok && lm.Label != "" {
		return lm.Label
	}

	return key
}

// legCost is the cheapest of the parallel connections from → to, the one
// the solver relaxed.
func legCost(g *core.Graph, from, to string) float64 {
	weights := lo.FilterMap(g.Neighbors(from), func(nb core.Neighbor, _ int) (float64, bool) {
		return nb.Weight, nb.Key == to
	})
	if len(weights) == 0 {
		return math.Inf(1)
	}

	return lo.Min(weights)
}
