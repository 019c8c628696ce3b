// 18 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"runtime"

	"github.com/andrew-torda/seqmotif/pkg/motifmain"
	. "github.com/andrew-torda/seqmotif/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags]")
	flag.PrintDefaults()
}

func main() {
	var flags motifmain.CmdFlag

	flag.IntVar(&flags.NSeq, "n", 1000000, "number of sequences to generate")
	flag.IntVar(&flags.Len, "l", 50, "sequence length")
	flag.StringVar(&flags.Probs, "p", "0.25,0.25,0.25,0.25", "probabilities of A,C,G,T")
	flag.IntVar(&flags.MotifSize, "k", 5, "motif size")
	flag.Float64Var(&flags.MinEntropy, "e", 1.5, "entropy threshold (bits)")
	flag.StringVar(&flags.Outfile, "o", "artificial_database.txt", "corpus output file, empty for none")
	flag.Int64Var(&flags.Iseed, "r", 0, "random number seed, 0 for the clock")
	flag.IntVar(&flags.NProc, "j", runtime.NumCPU(), "number of goroutines")
	flag.IntVar(&flags.NTop, "top", 0, "also print this many of the best motifs")
	flag.StringVar(&flags.ProfFile, "prof", "", "write per site profile to this file")
	flag.BoolVar(&flags.Time, "t", false, "print out timing information")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Got", flag.NArg(), "args, expected none")
		usage()
		os.Exit(ExitUsageError)
	}

	if err := motifmain.Mymain(&flags, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	} else {
		os.Exit(ExitSuccess)
	}
}
