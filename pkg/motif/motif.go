// 17 Oct 2026

// Package motif counts every k-length substring in a set of sequences
// and picks the most common one. Ties go to the motif with the longest
// run of one base, then to the motif that sorts first.
package motif

import (
	"errors"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/seqmotif/pkg/score"
)

var ErrBadK = errors.New("motif size must be positive")

// Tally maps a motif to the number of times it was seen, counting
// overlapping windows.
type Tally map[string]int

// Result is one motif with its count and longest run.
// The zero Result means no motif was found.
type Result struct {
	Motif string
	Count int
	Run   int
}

// Found is false for the empty result, when the corpus was empty or
// the motif size was longer than every sequence.
func (r Result) Found() bool { return r.Count > 0 }

// better says if a should be ranked above b.
func better(a, b Result) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	if a.Run != b.Run {
		return a.Run > b.Run
	}
	return a.Motif < b.Motif
}

// countSeqs adds the k-mers of each sequence to tally.
func countSeqs(seqs []string, k int, tally Tally) {
	for _, s := range seqs {
		for i := 0; i <= len(s)-k; i++ {
			tally[s[i:i+k]]++
		}
	}
}

// Count slides a window of size k over every sequence and returns the
// tally. The sequences are split into nproc chunks, each counted into
// its own map. The maps are merged once all the goroutines are done.
// nproc of zero or less means one per cpu.
func Count(seqs []string, k, nproc int) (Tally, error) {
	if k <= 0 {
		return nil, fmt.Errorf("motif size %d: %w", k, ErrBadK)
	}
	if nproc <= 0 {
		nproc = runtime.NumCPU()
	}
	if len(seqs)*10 < nproc { // Not worth the goroutines
		nproc = 1
	}
	if nproc == 1 {
		tally := make(Tally)
		countSeqs(seqs, k, tally)
		return tally, nil
	}

	locals := make([]Tally, nproc)
	sperproc := 1 + len(seqs)/nproc
	var g errgroup.Group
	for i := 0; i < nproc; i++ {
		start := i * sperproc
		if start >= len(seqs) {
			break
		}
		end := min(start+sperproc, len(seqs))
		i := i // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			locals[i] = make(Tally)
			countSeqs(seqs[start:end], k, locals[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tally := locals[0]
	if tally == nil {
		tally = make(Tally)
	}
	for _, l := range locals[1:] {
		for m, n := range l {
			tally[m] += n
		}
	}
	return tally, nil
}

// Total is the number of windows counted. For a tally built with
// motif size k it is the sum over sequences of max(0, len - k + 1).
func (t Tally) Total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// Best returns the most frequent motif. Equal counts are decided by
// the longest run of one base, and after that by sort order, so the
// answer does not depend on map iteration.
func (t Tally) Best() Result {
	var best Result
	for m, n := range t {
		if n < best.Count {
			continue
		}
		r := Result{Motif: m, Count: n, Run: score.LongestRunStr(m)}
		if better(r, best) {
			best = r
		}
	}
	return best
}

// Top returns up to n results, best first.
func (t Tally) Top(n int) []Result {
	if n <= 0 {
		return nil
	}
	all := make([]Result, 0, len(t))
	for m, c := range t {
		all = append(all, Result{Motif: m, Count: c, Run: score.LongestRunStr(m)})
	}
	sort.Slice(all, func(i, j int) bool { return better(all[i], all[j]) })
	if len(all) > n {
		all = all[:n]
	}
	return all
}
