package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/jornada/pkg/domain"
)

// Validate loads the configured modules and checks the merged graph:
// unknown targets, dead ends and unreachable nodes are reported.
func Validate(opts Options, w io.Writer) error {
	if len(opts.Modules) == 0 {
		return errors.New("no module paths given")
	}
	opts.Lenient = false

	engine, err := createEngine(opts, createLogger(opts.Debug), domain.LifecycleHooks{})
	if err != nil {
		return err
	}

	nodes := engine.Inspect()
	terminal := 0
	for _, n := range nodes {
		if n.IsTerminal() {
			terminal++
		}
	}
	fmt.Fprintf(w, "Graph is valid: %d nodes, %d profile node(s), entry %q\n", len(nodes), terminal, engine.Graph().Entry())
	return nil
}
