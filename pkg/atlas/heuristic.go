package atlas

import "github.com/texpack/texpack/pkg/errors"

// Heuristic scores how well a candidate texture fills a free node.
// The set is closed: values outside it are rejected by ParseHeuristic
// and Options.Validate before any layout work starts.
type Heuristic uint8

const (
	// HeuristicArea scores by texture area over node area.
	HeuristicArea Heuristic = iota
	// HeuristicMaxOneAxis scores by the better of the two axis ratios.
	HeuristicMaxOneAxis
)

// String returns the flag spelling of the heuristic.
func (h Heuristic) String() string {
	switch h {
	case HeuristicArea:
		return "area"
	case HeuristicMaxOneAxis:
		return "maxaxis"
	}
	return "unknown"
}

// ParseHeuristic converts a flag value into a Heuristic.
func ParseHeuristic(s string) (Heuristic, error) {
	switch s {
	case "area":
		return HeuristicArea, nil
	case "maxaxis":
		return HeuristicMaxOneAxis, nil
	}
	return HeuristicArea, errors.New(errors.ErrCodeInvalidHeuristic,
		"invalid heuristic: %q (must be 'area' or 'maxaxis')", s)
}

func (h Heuristic) score(tex Texture, node Rect) float64 {
	switch h {
	case HeuristicMaxOneAxis:
		w := float64(tex.Width) / float64(node.W)
		ht := float64(tex.Height) / float64(node.H)
		if w > ht {
			return w
		}
		return ht
	default:
		return float64(tex.Area()) / float64(node.Area())
	}
}

// bestFit picks the pool index of the texture that best fills node under
// h, or -1 if the pool is empty or nothing fits. Textures larger than
// the node on either axis are rejected outright. Ties go to the earliest
// candidate: only a strictly better score replaces the current winner,
// which keeps selection deterministic for a stable pool order.
func bestFit(node Rect, pool []Texture, h Heuristic) int {
	best := -1
	var bestScore float64
	for i, tex := range pool {
		if tex.Width > node.W || tex.Height > node.H {
			continue
		}
		if s := h.score(tex, node); best == -1 || s > bestScore {
			best = i
			bestScore = s
		}
	}
	return best
}
