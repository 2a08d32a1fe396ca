// Package cli provides the command-line interface for chordbind.
package cli

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	PlayCommand     PlayCommand     `command:"play" subcommands-optional:"true" description:"Show the actions of a scheme as they are triggered in the terminal"`
	CheckCommand    CheckCommand    `command:"check" subcommands-optional:"true" description:"Run the binding diagnostics of a scheme"`
	SimulateCommand SimulateCommand `command:"simulate" subcommands-optional:"true" description:"Replay scripted frames through a scheme and print its active actions"`
	CanonCommand    CanonCommand    `command:"canon" subcommands-optional:"true" description:"Print the canonical form of chords"`
	VersionCommand  VersionCommand  `command:"version" subcommands-optional:"true" description:"Show the program version"`
}

var Opts CommandLineOpts
