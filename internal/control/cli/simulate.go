package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/chordbind/internal/host"
	"github.com/ja-he/chordbind/internal/input"
)

// Flags for the `simulate` command line command, for `go-flags` to parse
// command line args into.
type SimulateCommand struct {
	Scheme string   `short:"s" long:"scheme" description:"the scheme to simulate; the configured one if omitted" value-name:"<scheme>"`
	Frames []string `short:"f" long:"frame" description:"the keys held on a frame (repeatable, one per frame; empty for none)" value-name:"<chord>" required:"true"`
}

// Executes the simulate command.
// (This gets called by `go-flags` when `simulate` is provided on the command
// line)
func (command *SimulateCommand) Execute(args []string) error {
	configData, err := loadConfig()
	if err != nil {
		return err
	}

	registry, err := newSchemeRegistry(command.Scheme, configData, log.Logger)
	if err != nil {
		return err
	}

	frames, err := parseFrames(command.Frames)
	if err != nil {
		return err
	}

	simulate(os.Stdout, registry, frames)
	return nil
}

func parseFrames(specs []string) ([][]input.Key, error) {
	frames := make([][]input.Key, 0, len(specs))
	for i, spec := range specs {
		keys, err := input.ParseChord(input.Keyspec(spec))
		if err != nil {
			return nil, fmt.Errorf("invalid frame %d: %w", i+1, err)
		}
		frames = append(frames, keys)
	}
	return frames, nil
}

// simulate replays the frames through a loop driving the registry and writes
// the active actions of every frame.
func simulate(w io.Writer, registry *input.Registry, frames [][]input.Key) {
	source := host.NewScriptedSource(frames...)
	loop := host.NewLoop(source, registry)
	loop.AddSystem(func(frame uint64, registry *input.Registry) {
		fmt.Fprintf(w, "%d: %s\n", frame, strings.Join(registry.Active(), " "))
	})
	for !source.Done() {
		loop.Step()
	}
}
