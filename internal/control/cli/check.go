package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/chordbind/internal/input"
)

// Flags for the `check` command line command, for `go-flags` to parse
// command line args into.
type CheckCommand struct {
	Scheme string `short:"s" long:"scheme" description:"the scheme to check; the configured one if omitted" value-name:"<scheme>"`
	Strict bool   `long:"strict" description:"exit with an error if any bindings collide"`
}

// Executes the check command.
// (This gets called by `go-flags` when `check` is provided on the command
// line)
func (command *CheckCommand) Execute(args []string) error {
	configData, err := loadConfig()
	if err != nil {
		return err
	}

	registry, err := newSchemeRegistry(command.Scheme, configData, log.Logger)
	if err != nil {
		return err
	}

	return writeCheckReport(os.Stdout, registry, command.Strict)
}

func writeCheckReport(w io.Writer, registry *input.Registry, strict bool) error {
	distinct := registry.DiagnoseConflicts()
	collisions := registry.Collisions()

	fmt.Fprintf(w, "%d entries, %d distinct bindings\n", len(registry.Entries()), len(distinct))
	for _, e := range distinct {
		fmt.Fprintf(w, "  %-16s %-32s %s\n", e.Name, e.Binding.CanonicalForm(), e.Binding.Mode())
	}

	if len(collisions) == 0 {
		fmt.Fprintln(w, "no colliding bindings")
		return nil
	}

	fmt.Fprintf(w, "%d colliding bindings\n", len(collisions))
	for _, c := range collisions {
		fmt.Fprintf(w, "  %-16s %-32s same as '%s'\n", c.Name, c.Binding.CanonicalForm(), c.FirstName)
	}
	if strict {
		return fmt.Errorf("%d colliding bindings", len(collisions))
	}
	return nil
}
