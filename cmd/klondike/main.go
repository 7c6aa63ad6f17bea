package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every sub-command. Each one overrides the
// matching setting in the config file.
type Globals struct {
	Config   string `short:"c" help:"Path to the HCL config file" default:"klondike.hcl" env:"KLONDIKE_CONFIG" type:"path"`
	Seed     int64  `short:"s" help:"Shuffle seed for the first deal; 0 picks one from the clock" env:"KLONDIKE_SEED"`
	Lenient  bool   `help:"Let any suit start any foundation" env:"KLONDIKE_LENIENT"`
	Color    string `help:"Colour output: auto, always or never" env:"KLONDIKE_COLOR"`
	LogLevel string `help:"Log level: debug, info, warn or error" env:"KLONDIKE_LOG_LEVEL"`
	LogFile  string `help:"Where to write the log" env:"KLONDIKE_LOG_FILE"`
}

type CLI struct {
	Globals `embed:""`

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"1" help:"Play Klondike (the default)"`
	Plain   PlainCmd         `cmd:"" help:"Play at a line prompt instead of full screen"`
	Deal    DealCmd          `cmd:"" help:"Print the opening board for a seed and exit"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("klondike"),
		kong.Description("Klondike solitaire, three-card draw, in the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
