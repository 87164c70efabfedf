package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp(os.Stdout, os.Stderr).Run(args)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "bstdemo",
		Usage:     "build a random binary search tree, skew it and rebalance it",
		Flags:     demoFlags,
		Action:    runDemo,
		Writer:    stdout,
		ErrWriter: stderr,
	}
}

var demoFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "size",
		Usage:   "number of random values the tree is built from",
		Value:   100,
		EnvVars: []string{"BST_SIZE"},
	},
	&cli.IntFlag{
		Name:    "max",
		Usage:   "random values are drawn from [0, max)",
		Value:   100,
		EnvVars: []string{"BST_MAX"},
	},
	&cli.Int64Flag{
		Name:    "seed",
		Usage:   "random seed, 0 picks one from the clock",
		EnvVars: []string{"BST_SEED"},
	},
	&cli.IntSliceFlag{
		Name:  "skew",
		Usage: "values inserted after the tree is built",
		Value: cli.NewIntSlice(150, 200, 250, 300, 350),
	},
	&cli.BoolFlag{
		Name:  "top-down",
		Usage: "draw the tree top down instead of sideways",
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log debug information",
	},
}

type demoOptions struct {
	size, max int
	seed      int64
	skew      []int
	topDown   bool
}

func runDemo(cctx *cli.Context) error {
	level := slog.LevelInfo
	if cctx.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cctx.App.ErrWriter, &slog.HandlerOptions{Level: level}))
	opts := demoOptions{
		size:    cctx.Int("size"),
		max:     cctx.Int("max"),
		seed:    cctx.Int64("seed"),
		skew:    cctx.IntSlice("skew"),
		topDown: cctx.Bool("top-down"),
	}
	if opts.size < 0 {
		return fmt.Errorf("invalid --size %d: must not be negative", opts.size)
	}
	if opts.max <= 0 {
		return fmt.Errorf("invalid --max %d: must be positive", opts.max)
	}
	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}
	return demo(cctx.App.Writer, logger, opts)
}

func randomValues(rg *rand.Rand, size, limit int) []int {
	vs := make([]int, size)
	for i := range vs {
		vs[i] = rg.Intn(limit)
	}
	return vs
}

func demo(w io.Writer, logger *slog.Logger, opts demoOptions) error {
	logger.Debug("generating values", "size", opts.size, "max", opts.max, "seed", opts.seed)
	tree := Trees.New(randomValues(rand.New(rand.NewSource(opts.seed)), opts.size, opts.max)...)
	logger.Info("tree built", "size", tree.Size(), "height", tree.Height(tree.Root()), "balanced", tree.IsBalanced())

	if err := printTree(w, tree, opts.topDown); err != nil {
		return err
	}
	if err := printTraversals(w, tree); err != nil {
		return err
	}

	for _, v := range opts.skew {
		if !tree.Insert(v) {
			logger.Debug("value already present", "value", v)
		}
	}
	logger.Info("inserted skew values", "count", len(opts.skew), "height", tree.Height(tree.Root()), "balanced", tree.IsBalanced())

	tree.Rebalance()
	logger.Info("tree rebalanced", "size", tree.Size(), "height", tree.Height(tree.Root()), "balanced", tree.IsBalanced())

	if err := printTree(w, tree, opts.topDown); err != nil {
		return err
	}
	return printTraversals(w, tree)
}

func printTree(w io.Writer, tree *Trees.BSTree[int], topDown bool) error {
	if topDown {
		_, err := fmt.Fprintln(w, tree.TreePrint().String())
		return err
	}
	return tree.Fprint(w)
}

func printTraversals(w io.Writer, tree *Trees.BSTree[int]) error {
	orders := []struct {
		name string
		trav func(func(*Trees.Node[int])) error
	}{
		{"Level-order", tree.LevelOrder},
		{"Pre-order", tree.PreOrder},
		{"Post-order", tree.PostOrder},
		{"In-order", tree.InOrder},
	}
	for _, o := range orders {
		fmt.Fprintf(w, "%s:", o.name)
		if err := o.trav(func(n *Trees.Node[int]) {
			fmt.Fprintf(w, " %d", n.Value())
		}); err != nil {
			return fmt.Errorf("%s traversal: %w", o.name, err)
		}
		fmt.Fprintln(w)
	}
	return nil
}
