// Command bstdemo exercises Trees.BSTree from the command line.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&cmdTrials{}, "")
	subcommands.Register(&cmdLevels{}, "")
	flag.Parse()
	ctx := context.Background()
	status := subcommands.Execute(ctx)
	glog.Flush()
	os.Exit(int(status))
}
