// 19 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/andrew-torda/seqmotif/pkg/kmer"
	. "github.com/andrew-torda/seqmotif/pkg/seq/common"
)

func main() {
	var flags kmer.CmdFlag
	var infile string
	flag.IntVar(&flags.MotifSize, "k", 5, "motif size")
	flag.IntVar(&flags.NProc, "j", runtime.NumCPU(), "number of goroutines")
	flag.IntVar(&flags.NTop, "top", 0, "also print this many of the best motifs")
	flag.Parse()
	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Got", flag.NArg(), "args, expected at most 1")
		flag.Usage()
		os.Exit(ExitUsageError)
	}
	if flag.NArg() == 1 {
		infile = flag.Arg(0)
	}
	if err := kmer.Mymain(&flags, infile, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
