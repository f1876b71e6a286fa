// measure times word lookups in a LinkedBST built in different ways and
// compares it with a plain list and with other ordered and hashed containers.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/term"

	"github.com/g-m-twostay/go-bst/Trees"
)

type config struct {
	words      string
	lookups    int
	degenerate int
	seed       int64
	degree     int
	bench      bool
	verbose    bool
}

func parseFlags(args []string, out io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("measure", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&cfg.words, "words", "words.txt", "newline delimited word list")
	fs.IntVar(&cfg.lookups, "lookups", 10000, "random lookups per container")
	fs.IntVar(&cfg.degenerate, "degenerate", 100, "random lookups in the tree built in file order")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed")
	fs.IntVar(&cfg.degree, "degree", 32, "degree of the google/btree baseline")
	fs.BoolVar(&cfg.bench, "bench", false, "also measure ns/op of single lookups")
	fs.BoolVar(&cfg.verbose, "v", false, "debug tracing")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.lookups < 0 || cfg.degenerate < 0 {
		return cfg, fmt.Errorf("lookup counts must not be negative")
	}
	if cfg.degree < 2 {
		return cfg, fmt.Errorf("btree degree must be at least 2, got %d", cfg.degree)
	}
	return cfg, nil
}

// tracer writes to trace with key 'bst'
func tracer() tracing.Trace {
	return tracing.Select("bst")
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	if cfg.verbose {
		tracer().SetTraceLevel(tracing.LevelDebug)
	} else {
		tracer().SetTraceLevel(tracing.LevelInfo)
	}
	color.NoColor = color.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))

	words, err := loadWords(cfg.words)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(1)
	}
	tracer().Infof("loaded %d words from %s", len(words), cfg.words)

	head, line := color.New(color.FgCyan, color.Bold), color.New(color.FgGreen)
	head.Println("Random lookups")
	for _, r := range run(cfg, words) {
		line.Println(r.String())
	}
	if !cfg.bench {
		return
	}

	testing.Init()
	head.Println("Single lookup")
	tree := Trees.From[string, uint32](words)
	tree.Rebalance()
	for _, c := range append([]container{{"BST, rebalanced", tree.Contains}}, baselines(cfg, words)...) {
		line.Printf("%-36s %10d ns/op\n", c.name, benchFind(words, c.find).NsPerOp())
	}
}
