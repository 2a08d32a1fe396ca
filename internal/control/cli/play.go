package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/chordbind/internal/control/action"
	"github.com/ja-he/chordbind/internal/host"
	"github.com/ja-he/chordbind/internal/potatolog"
	"github.com/ja-he/chordbind/internal/tui"
)

// Flags for the `play` command line command, for `go-flags` to parse
// command line args into.
type PlayCommand struct {
	Scheme        string `short:"s" long:"scheme" description:"the scheme to play; the configured one if omitted" value-name:"<scheme>"`
	HoldTicks     int    `long:"hold-ticks" default:"4" description:"ticks a terminal key stays held after it was last reported (terminals report no key releases)"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs only shown in the view)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Executes the play command.
// (This gets called by `go-flags` when `play` is provided on the command
// line)
func (command *PlayCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, potatolog.GlobalMemoryLog)
	} else {
		logWriter = potatolog.GlobalMemoryLog
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	configData, err := loadConfig()
	if err != nil {
		return err
	}
	interval, err := configData.TickInterval()
	if err != nil {
		return err
	}

	scheme := command.Scheme
	if scheme == "" {
		scheme = configData.Scheme
	}
	registry, err := newSchemeRegistry(scheme, configData, tuiLogger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	screenHandler, err := tui.NewScreenHandler(screen)
	if err != nil {
		return err
	}
	defer screenHandler.Fini()

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	if configData.ShouldDiagnose() {
		registry.DiagnoseConflicts()
	}

	view, err := tui.NewActionView(screenHandler, potatolog.GlobalMemoryLog, configData.Colors)
	if err != nil {
		return err
	}

	source := tui.NewSource(screenHandler.GetEventPollable(), screenHandler, command.HoldTicks)
	loop := host.NewLoop(source, registry)
	view.SetMetrics(loop.Metrics())

	dispatcher := host.NewDispatcher()
	bound := make(map[string]bool)
	for _, entry := range registry.Entries() {
		name := entry.Name
		if bound[name] {
			continue
		}
		bound[name] = true
		dispatcher.Bind(name, action.NewSimple(
			func() string { return "log activation of " + name },
			func() { log.Debug().Str("name", name).Uint64("frame", loop.Frame()).Msg("action active") },
		))
	}
	loop.AddSystem(dispatcher.Dispatch)
	loop.AddSystem(view.Draw)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	go func() {
		select {
		case <-source.Quit():
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Info().Str("scheme", scheme).Dur("tick", interval).Msg("chordbind play started")
	err = loop.Run(ctx, interval)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
