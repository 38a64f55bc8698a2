package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/jornada/pkg/domain"
)

// GraphOverlay contains session data to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes   []string
	ProjectedNodes []string
	CurrentNode    string
}

// OverlayFromState builds an overlay from a flow state.
func OverlayFromState(state *domain.FlowState) *GraphOverlay {
	if state == nil {
		return nil
	}
	return &GraphOverlay{
		VisitedNodes:   state.History,
		ProjectedNodes: state.Remaining(),
		CurrentNode:    state.CurrentNodeID,
	}
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a list of nodes.
// It applies semantic styling:
// - Welcome: ((Circle))
// - Profile: ([Stadium])
// - Reflection (mindset scale, commitment): {{Hexagon}}
// - Default (answer input): [/Parallelogram/]
// It also applies overlay styles (Visited/Projected/Current) if provided.
func GenerateMermaid(nodes []domain.QuestionNode, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range nodes {
		safeID := sanitizeMermaidID(node.ID)

		opener, closer := "[/", "/]"
		switch node.Kind {
		case domain.KindWelcome:
			opener, closer = "((", "))"
		case domain.KindProfileTerminal:
			opener, closer = "([", "])"
		case domain.KindMindsetScale, domain.KindActionCommitment:
			opener, closer = "{{", "}}"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, node.ID, closer)

		for _, r := range node.Routes {
			safeTo := sanitizeMermaidID(r.To)
			if r.Label == "" {
				fmt.Fprintf(&sb, "    %s --> %s\n", safeID, safeTo)
				continue
			}
			// Escape double quotes for the Mermaid label
			label := strings.ReplaceAll(r.Label, "\"", "'")
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", safeID, label, safeTo)
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef projected fill:#f5f5f5,stroke:#9e9e9e,stroke-dasharray:5 5,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		styled := make(map[string]bool)
		writeClass := func(ids []string, class string) {
			for _, id := range ids {
				safeID := sanitizeMermaidID(id)
				if safeID == "" || styled[safeID] || id == overlay.CurrentNode {
					continue
				}
				styled[safeID] = true
				fmt.Fprintf(&sb, "    class %s %s;\n", safeID, class)
			}
		}
		writeClass(overlay.VisitedNodes, "visited")
		writeClass(overlay.ProjectedNodes, "projected")

		if overlay.CurrentNode != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
