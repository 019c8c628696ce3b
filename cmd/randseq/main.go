// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/andrew-torda/seqmotif/pkg/randseq"
	. "github.com/andrew-torda/seqmotif/pkg/seq/common"
)

func main() {
	f := flag.NewFlagSet("randseq", flag.ExitOnError)
	const iseed int64 = 1637
	var args randseq.RandSeqArgs
	var probs string

	f.StringVar(&probs, "p", "0.25,0.25,0.25,0.25", "probabilities of A,C,G,T")
	f.Float64Var(&args.MinEntropy, "e", 0, "minimum entropy (bits) to keep a sequence")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	f.IntVar(&args.NProc, "j", runtime.NumCPU(), "number of goroutines")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Too few args\nrandseq [..] file nseq length")
		f.Usage()
		os.Exit(ExitUsageError)
	}
	var err error
	if args.Model, err = randseq.ParseModel(probs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsageError)
	}

	const emsg = "Failed converting %s to positive integer\n"
	if nseq, err := strconv.ParseUint(f.Args()[1], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Args()[1])
		os.Exit(ExitFailure)
	} else {
		args.Nseq = int(nseq)
	}
	if nlen, err := strconv.ParseUint(f.Args()[2], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Args()[2])
		os.Exit(ExitFailure)
	} else {
		args.Len = int(nlen)
	}

	os.Exit(run(&args, f.Args()[0]))
}

// run is separate from main so the deferred close happens before os.Exit.
func run(args *randseq.RandSeqArgs, fname string) int {
	if fname == "-" || fname == "" {
		args.Wrtr = os.Stdout
	} else {
		ft, err := os.Create(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			return ExitFailure
		}
		defer ft.Close()
		args.Wrtr = ft
	}
	c, err := randseq.RandSeqMain(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	fmt.Fprintln(os.Stderr, "kept", c.Len(), "of", c.NTried(), "sequences")
	return ExitSuccess
}
