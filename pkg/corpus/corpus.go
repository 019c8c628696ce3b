// 15 Oct 2026

// Package corpus holds the set of generated sequences. It can write
// them out one per line, read them back and build a per-position
// profile of base usage.
package corpus

import (
	"errors"
	"sync"
)

var (
	ErrBadSym  = errors.New("symbol not in ACGT")
	ErrDiffLen = errors.New("sequences have different lengths")
	ErrEmpty   = errors.New("no sequences")
)

// Corpus is the collection of accepted sequences. Generators may add
// to it from several goroutines. Once generation is finished it is
// only read.
type Corpus struct {
	mu     sync.Mutex
	seqs   []string
	nTried int // sequences generated, accepted or not
}

// New returns an empty corpus with room for capacity sequences.
func New(capacity int) *Corpus {
	return &Corpus{seqs: make([]string, 0, capacity)}
}

// Add appends a batch of accepted sequences and records how many
// attempts were needed to get them.
func (c *Corpus) Add(nTried int, seqs ...string) {
	c.mu.Lock()
	c.seqs = append(c.seqs, seqs...)
	c.nTried += nTried
	c.mu.Unlock()
}

// Seqs returns the sequences. The slice is shared, so do not write to it.
func (c *Corpus) Seqs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seqs
}

// Len is the number of accepted sequences.
func (c *Corpus) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seqs)
}

// NTried is the number of sequences generated, including those
// which were thrown away.
func (c *Corpus) NTried() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nTried
}
