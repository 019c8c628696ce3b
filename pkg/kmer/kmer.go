// 19 Oct 2026

package kmer

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/seqmotif/pkg/corpus"
	"github.com/andrew-torda/seqmotif/pkg/motif"
)

type CmdFlag struct {
	MotifSize int // length of motifs
	NProc     int // goroutines for counting
	NTop      int // print this many of the best
}

// Mymain counts the motifs in a saved corpus and writes the best to wrtr.
// Standard input is read if infile is "" or "-".
func Mymain(flags *CmdFlag, infile string, wrtr io.Writer) error {
	var seqs []string
	var err error
	if infile == "" || infile == "-" {
		seqs, err = corpus.Read(os.Stdin)
	} else {
		seqs, err = corpus.ReadFile(infile)
	}
	if err != nil {
		return fmt.Errorf("Fail reading sequences: %w", err)
	}
	tally, err := motif.Count(seqs, flags.MotifSize, flags.NProc)
	if err != nil {
		return err
	}
	best := tally.Best()
	if !best.Found() {
		fmt.Fprintf(wrtr, "No motif of size %d found in %d sequences\n", flags.MotifSize, len(seqs))
		return nil
	}
	fmt.Fprintf(wrtr, "The most frequent motif of size %d is: %s (%d of %d)\n",
		flags.MotifSize, best.Motif, best.Count, tally.Total())
	for i, r := range tally.Top(flags.NTop) {
		fmt.Fprintf(wrtr, "%3d %s %d run %d\n", i+1, r.Motif, r.Count, r.Run)
	}
	return nil
}
