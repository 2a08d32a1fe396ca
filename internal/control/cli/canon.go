package cli

import (
	"fmt"

	"github.com/ja-he/chordbind/internal/input"
)

// Flags for the `canon` command line command, for `go-flags` to parse
// command line args into.
type CanonCommand struct {
	Args struct {
		Chords []string `positional-arg-name:"<chord>" description:"chords like 'ControlLeft+KeyS' or 'm:Left+KeyW'" required:"1"`
	} `positional-args:"true"`
}

// Executes the canon command.
// (This gets called by `go-flags` when `canon` is provided on the command
// line)
func (command *CanonCommand) Execute(args []string) error {
	for _, chord := range command.Args.Chords {
		keys, err := input.ParseChord(input.Keyspec(chord))
		if err != nil {
			return err
		}
		fmt.Println(input.NewBinding(keys...).CanonicalForm())
	}
	return nil
}
