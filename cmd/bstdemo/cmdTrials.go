package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"github.com/g-m-twostay/bintree/Trees"
	"github.com/golang/glog"
	"github.com/google/subcommands"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
)

type cmdTrials struct {
	argTrials int
	argCount  int
	argMax    int
	argSeed   int64
}

func (cmd *cmdTrials) Name() string     { return "trials" }
func (cmd *cmdTrials) Synopsis() string { return "push random values and show every operation" }
func (cmd *cmdTrials) Usage() string {
	return "trials [-n trials] [-count values] [-max value] [-seed seed]\n"
}

func (cmd *cmdTrials) SetFlags(f *flag.FlagSet) {
	f.IntVar(&cmd.argTrials, "n", 100, "Number of trials")
	f.IntVar(&cmd.argCount, "count", 10, "Values pushed per trial")
	f.IntVar(&cmd.argMax, "max", 10, "Largest random value")
	f.Int64Var(&cmd.argSeed, "seed", 0, "Random seed, 0 seeds from the clock")
}

func (cmd *cmdTrials) validate() error {
	if cmd.argTrials < 0 {
		return errors.Errorf("negative number of trials %d", cmd.argTrials)
	}
	if cmd.argCount < 0 {
		return errors.Errorf("negative value count %d", cmd.argCount)
	}
	if cmd.argMax < 0 {
		return errors.Errorf("negative largest value %d", cmd.argMax)
	}
	return nil
}

func (cmd *cmdTrials) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	if err := cmd.validate(); err != nil {
		glog.Errorf("trials: %v", err)
		return subcommands.ExitUsageError
	}
	seed := cmd.argSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	glog.Infof("running %d trials of %d values in [0, %d], seed %d", cmd.argTrials, cmd.argCount, cmd.argMax, seed)
	rg := rand.New(rand.NewSource(seed))
	for i := range cmd.argTrials {
		pterm.DefaultSection.Printfln("Test #%d", i+1)
		trial(rg, cmd.argCount, cmd.argMax)
	}
	return subcommands.ExitSuccess
}

func trial(rg *rand.Rand, count, maxV int) {
	var tree Trees.BSTree[int]
	pushed := make([]int, count)
	for i := range pushed {
		pushed[i] = rg.Intn(maxV + 1)
		tree.Push(pushed[i])
	}
	pterm.Printfln("Insertion: %s", join(pushed))

	dst := make([]*Trees.Node[int], tree.Size())
	pterm.Printfln("Sorted: %s", join(nodeValues(dst[:tree.InOrder(dst)])))
	pterm.Printfln("Traverse by levels: %s", join(nodeValues(dst[:tree.Levels(dst)])))
	pterm.Printfln("Height: %d", tree.Height())

	removed := tree.RemoveDuplicates()
	pterm.Printfln("Removing duplicates (%d): %s", removed, join(nodeValues(dst[:tree.InOrder(dst)])))

	v := rg.Intn(maxV + 1)
	pterm.Printfln("Removing %d (%d)", v, tree.Remove(v))
	pterm.Printfln("In-order: %s", join(nodeValues(dst[:tree.InOrder(dst)])))

	if tree.Corrupt() {
		glog.Errorf("tree is corrupt after pushing %v and removing %d", pushed, v)
	}
}
