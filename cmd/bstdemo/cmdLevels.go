package main

import (
	"context"
	"flag"
	"strconv"

	"github.com/g-m-twostay/bintree/Trees"
	"github.com/golang/glog"
	"github.com/google/subcommands"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
)

type cmdLevels struct {
	argDedup bool
}

func (cmd *cmdLevels) Name() string     { return "levels" }
func (cmd *cmdLevels) Synopsis() string { return "push the given values and print the tree level by level" }
func (cmd *cmdLevels) Usage() string    { return "levels [-dedup] value...\n" }

func (cmd *cmdLevels) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.argDedup, "dedup", false, "Remove duplicates before printing")
}

func parseValues(args []string) ([]int, error) {
	vs := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q", a)
		}
		vs[i] = v
	}
	return vs, nil
}

func (cmd *cmdLevels) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	vs, err := parseValues(f.Args())
	if err != nil {
		glog.Errorf("levels: %v", err)
		return subcommands.ExitUsageError
	}
	tree := Trees.From(vs...)
	if cmd.argDedup {
		glog.Infof("removed %d duplicates", tree.RemoveDuplicates())
	}
	dst := make([]*Trees.Node[int], tree.Size())
	levels := splitLevels(dst[:tree.Levels(dst)])

	data := pterm.TableData{{"Level", "Values"}}
	for i, l := range levels {
		data = append(data, []string{strconv.Itoa(i + 1), join(nodeValues(l))})
	}
	if err := pterm.DefaultTable.WithHasHeader(true).WithData(data).Render(); err != nil {
		glog.Errorf("levels: %v", err)
		return subcommands.ExitFailure
	}
	pterm.Info.Printfln("height %d, size %d", tree.Height(), tree.Size())
	return subcommands.ExitSuccess
}
