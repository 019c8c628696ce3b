// 31 July 2020

package randseq

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/seqmotif/pkg/corpus"
	"github.com/andrew-torda/seqmotif/pkg/score"
)

// RandSeqArgs is the set of arguments passed to the generator
type RandSeqArgs struct {
	Iseed      int64     // random number seed, 0 means seed from the clock
	Wrtr       io.Writer // where RandSeqMain writes to
	Model      Model     // probability of each base
	Nseq       int       // number of sequences to generate
	Len        int       // Length of sequences
	MinEntropy float64   // keep sequences with at least this entropy (bits)
	NProc      int       // number of goroutines, 0 for one per cpu
}

// check returns an error for arguments that cannot give a sensible corpus.
func (args *RandSeqArgs) check() error {
	if !args.Model.Valid() {
		return fmt.Errorf("model not set: %w", ErrBadModel)
	}
	if args.Nseq <= 0 {
		return fmt.Errorf("number of sequences %d: %w", args.Nseq, ErrBadArgs)
	}
	if args.Len <= 0 {
		return fmt.Errorf("sequence length %d: %w", args.Len, ErrBadArgs)
	}
	if math.IsNaN(args.MinEntropy) || args.MinEntropy < 0 || args.MinEntropy > 2 {
		return fmt.Errorf("entropy threshold %v is outside [0, 2]: %w", args.MinEntropy, ErrBadArgs)
	}
	return nil
}

// getseq returns a byte slice with a random sequence in it. Every
// position is an independent draw from the model.
func getseq(seqlen int, m *Model, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	for i := range ret {
		ret[i] = m.selectRandom(rnd.Float64())
	}
	return ret
}

// genBatch makes n sequences and keeps the ones which pass the
// entropy filter. Each caller has its own random number source.
func genBatch(n int, args *RandSeqArgs, rnd *rand.Rand) []string {
	var keep []string
	for i := 0; i < n; i++ {
		s := getseq(args.Len, &args.Model, rnd)
		if score.Entropy(s) >= args.MinEntropy {
			keep = append(keep, string(s))
		}
	}
	return keep
}

// Generate makes args.Nseq random sequences and returns a corpus with
// those that pass the entropy filter. The work is split into
// contiguous chunks, one per goroutine. Goroutine i seeds its source
// with Iseed + i and the chunks are put in the corpus in order, so a
// given seed and NProc always give the same corpus.
func Generate(args *RandSeqArgs) (*corpus.Corpus, error) {
	if err := args.check(); err != nil {
		return nil, err
	}
	nproc := args.NProc
	if nproc <= 0 {
		nproc = runtime.NumCPU()
	}
	if nproc > args.Nseq {
		nproc = args.Nseq
	}
	iseed := args.Iseed
	if iseed == 0 {
		iseed = time.Now().UnixNano()
	}

	batches := make([][]string, nproc)
	ntried := make([]int, nproc)
	sperproc := (args.Nseq + nproc - 1) / nproc
	var g errgroup.Group
	for i := 0; i < nproc; i++ {
		start := i * sperproc
		end := min(start+sperproc, args.Nseq)
		if start >= end {
			break
		}
		i := i // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			rnd := rand.New(rand.NewSource(iseed + int64(i)))
			batches[i] = genBatch(end-start, args, rnd)
			ntried[i] = end - start
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	nkeep := 0
	for _, b := range batches {
		nkeep += len(b)
	}
	c := corpus.New(nkeep)
	for i, b := range batches {
		c.Add(ntried[i], b...)
	}
	return c, nil
}

// RandSeqMain generates a corpus and writes it to args.Wrtr,
// one sequence per line.
func RandSeqMain(args *RandSeqArgs) (*corpus.Corpus, error) {
	c, err := Generate(args)
	if err != nil {
		return nil, err
	}
	if args.Wrtr == nil {
		return c, nil
	}
	if _, err := corpus.Write(args.Wrtr, c.Seqs()); err != nil {
		return c, err
	}
	return c, nil
}
