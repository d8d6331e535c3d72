package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/wbreza/drawkit/internal/cmd"
)

func init() {
	if !isDebugEnabled() {
		log.SetOutput(io.Discard)
	}
}

// isDebugEnabled checks to see if `--debug` was passed with a truthy
// value.
func isDebugEnabled() bool {
	debug := false
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)

	// The full command line is parsed here, before cobra has registered the
	// command specific flags, so unknown flags must not stop parsing.
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.BoolVar(&debug, "debug", false, "")

	// Keep -h / --help from printing a second usage block.
	flags.Usage = func() {}

	_ = flags.Parse(os.Args[1:])
	return debug
}

func main() {
	ctx := context.Background()
	rootCmd := cmd.NewRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
