package runtime

import (
	"math"

	"github.com/aretw0/jornada/pkg/domain"
)

// project walks the graph from `from`, always taking the first candidate,
// until a profile node or a node without successors is reached. A node id
// that repeats within the pass (or appears in visited) stops the walk.
// The returned slice starts with `from`.
func (e *Engine) project(from string, answers domain.Answers, visited []string) ([]string, error) {
	seen := make(map[string]bool, len(visited)+8)
	for _, id := range visited {
		seen[id] = true
	}
	seen[from] = true

	seq := []string{from}
	cur := from
	for {
		node, err := e.nodes.Get(cur)
		if err != nil {
			return nil, err
		}
		if node.IsTerminal() {
			return seq, nil
		}

		candidates := node.Successors(answers)
		if len(candidates) == 0 {
			if e.lenient {
				e.logger.Warn("projection ended at a node without successors", "node_id", cur, "kind", node.Kind)
				return seq, nil
			}
			return nil, &domain.DeadEndError{NodeID: cur, Kind: node.Kind}
		}

		next := candidates[0]
		if _, err := e.nodes.Get(next); err != nil {
			return nil, &domain.UnknownNodeError{NodeID: next, From: cur}
		}
		if seen[next] {
			e.logger.Warn("cycle detected during projection", "node_id", cur, "next", next)
			return seq, nil
		}

		seen[next] = true
		seq = append(seq, next)
		cur = next
	}
}

func percent(num, den int) int {
	if den <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(num) / float64(den)))
	return max(0, min(100, p))
}
