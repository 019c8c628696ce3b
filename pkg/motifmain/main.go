// 18 Oct 2026

// Package motifmain runs the whole pipeline: generate a corpus, save
// it and look for the most frequent motif.
package motifmain

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/andrew-torda/seqmotif/pkg/corpus"
	"github.com/andrew-torda/seqmotif/pkg/entropy"
	"github.com/andrew-torda/seqmotif/pkg/motif"
	"github.com/andrew-torda/seqmotif/pkg/randseq"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	NSeq       int     // number of sequences to generate
	Len        int     // length of each sequence
	Probs      string  // probabilities of A,C,G,T, comma separated
	MotifSize  int     // length of motifs to count
	MinEntropy float64 // sequences with less entropy are thrown away
	Outfile    string  // corpus file, "" means do not save
	Iseed      int64   // random number seed, 0 for the clock
	NProc      int     // goroutines per stage, 0 for one per cpu
	NTop       int     // also list this many of the best motifs
	ProfFile   string  // if set, write a per site profile here
	Time       bool    // print timing information

	// CorpusWrtr, if set, gets the corpus instead of Outfile.
	CorpusWrtr io.Writer
}

// Report is everything the pipeline found.
type Report struct {
	Corpus   *corpus.Corpus
	Best     motif.Result
	Top      []motif.Result
	Crc      uint64 // of the saved corpus
	WriteErr error  // from saving the corpus, if it failed
}

// saveCorpus writes the corpus wherever the flags say. Writing nowhere
// is not an error.
func saveCorpus(flags *CmdFlag, seqs []string) (uint64, error) {
	switch {
	case flags.CorpusWrtr != nil:
		return corpus.Write(flags.CorpusWrtr, seqs)
	case flags.Outfile != "":
		return corpus.WriteFile(flags.Outfile, seqs)
	}
	return 0, nil
}

// Find checks the flags, generates the corpus and counts motifs.
// The corpus is saved in the background while motifs are counted.
// A failure to save is put in the report and does not stop the count.
func Find(flags *CmdFlag) (*Report, error) {
	model, err := randseq.ParseModel(flags.Probs)
	if err != nil {
		return nil, err
	}
	if flags.MotifSize <= 0 {
		return nil, fmt.Errorf("motif size %d: %w", flags.MotifSize, motif.ErrBadK)
	}
	args := randseq.RandSeqArgs{
		Iseed:      flags.Iseed,
		Model:      model,
		Nseq:       flags.NSeq,
		Len:        flags.Len,
		MinEntropy: flags.MinEntropy,
		NProc:      flags.NProc,
	}
	c, err := randseq.Generate(&args)
	if err != nil {
		return nil, err
	}
	seqs := c.Seqs()
	report := &Report{Corpus: c}

	type wrtResult struct {
		crc uint64
		err error
	}
	wrtDone := make(chan wrtResult, 1)
	go func() {
		crc, err := saveCorpus(flags, seqs)
		wrtDone <- wrtResult{crc, err}
	}()

	tally, err := motif.Count(seqs, flags.MotifSize, flags.NProc)
	if err != nil {
		<-wrtDone
		return nil, err
	}
	report.Best = tally.Best()
	report.Top = tally.Top(flags.NTop)

	w := <-wrtDone
	report.Crc, report.WriteErr = w.crc, w.err
	return report, nil
}

// Mymain runs the pipeline and writes the answer to wrtr. Diagnostics go
// to standard error. If the corpus could not be saved, the motif is still
// reported, then the write error is returned.
func Mymain(flags *CmdFlag, wrtr io.Writer) error {
	if flags.Time {
		startTime := time.Now()
		end := func() {
			fmt.Fprintln(os.Stderr, "finished after", time.Since(startTime).Milliseconds(), "ms")
		}
		defer end()
	}
	report, err := Find(flags)
	if err != nil {
		return err
	}
	c := report.Corpus
	fmt.Fprintln(os.Stderr, "kept", c.Len(), "of", c.NTried(), "sequences")
	if report.WriteErr != nil {
		fmt.Fprintln(os.Stderr, "Warning, saving corpus failed:", report.WriteErr)
	} else if flags.CorpusWrtr != nil || flags.Outfile != "" {
		fmt.Fprintf(os.Stderr, "saved %d sequences %s crc32 %08x\n", c.Len(), flags.Outfile, report.Crc)
	}

	if report.Best.Found() {
		fmt.Fprintf(wrtr, "The most frequent motif of size %d is: %s\n", flags.MotifSize, report.Best.Motif)
	} else {
		fmt.Fprintf(wrtr, "No motif of size %d found\n", flags.MotifSize)
	}
	for i, r := range report.Top {
		fmt.Fprintf(wrtr, "%3d %s %d\n", i+1, r.Motif, r.Count)
	}

	if flags.ProfFile != "" {
		if prof, err := corpus.NewProfile(c.Seqs()); err != nil {
			fmt.Fprintln(os.Stderr, "Warning, no profile:", err)
		} else if err := entropy.WriteProfileFile(flags.ProfFile, prof, 0); err != nil {
			return err
		}
	}
	if report.WriteErr != nil {
		return fmt.Errorf("corpus not saved: %w", report.WriteErr)
	}
	return nil
}
