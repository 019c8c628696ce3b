// 14 Oct 2026

package randseq

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	. "github.com/andrew-torda/seqmotif/pkg/seq/common"
)

var (
	ErrBadModel = errors.New("invalid probability model")
	ErrBadArgs  = errors.New("invalid generator arguments")
)

// sumTol is how far the probabilities may add up away from 1
const sumTol = 1e-6

// cumProb is one entry in the cumulative table, like the IUB tables
// in the fasta benchmark.
type cumProb struct {
	c byte
	p float64
}

// Model is the probability of drawing each of A, C, G, T.
// It keeps the cumulative table for sampling, which only has
// the bases with non-zero probability.
type Model struct {
	probs [NSym]float64
	cum   []cumProb
}

// NewModel checks a list of probabilities, in the order of
// the alphabet, and returns a model for drawing bases.
func NewModel(probs []float64) (Model, error) {
	var m Model
	if len(probs) != NSym {
		return m, fmt.Errorf("got %d probabilities, need %d: %w", len(probs), NSym, ErrBadModel)
	}
	sum := 0.0
	for i, p := range probs {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return m, fmt.Errorf("probability of %c is %v: %w", Alphabet[i], p, ErrBadModel)
		}
		sum += p
		m.probs[i] = p
	}
	if sum == 0 {
		return m, fmt.Errorf("all probabilities are zero: %w", ErrBadModel)
	}
	if math.Abs(sum-1) > sumTol {
		return m, fmt.Errorf("probabilities add up to %v, not 1: %w", sum, ErrBadModel)
	}
	m.makeCumulative()
	return m, nil
}

// ParseModel reads a comma separated list like "0.25,0.25,0.25,0.25".
func ParseModel(s string) (Model, error) {
	fields := strings.Split(s, ",")
	probs := make([]float64, len(fields))
	for i, f := range fields {
		p, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Model{}, fmt.Errorf("probability %d, \"%s\": %w", i+1, f, ErrBadModel)
		}
		probs[i] = p
	}
	return NewModel(probs)
}

// makeCumulative turns the probabilities into running sums. The last
// boundary is set to exactly 1, so rounding can never leave a draw
// without a base.
func (m *Model) makeCumulative() {
	cp := 0.0
	m.cum = m.cum[:0]
	for i, p := range m.probs {
		if p == 0 {
			continue
		}
		cp += p
		m.cum = append(m.cum, cumProb{c: Alphabet[i], p: cp})
	}
	m.cum[len(m.cum)-1].p = 1
}

// Probs returns the probabilities in alphabet order.
func (m Model) Probs() []float64 {
	ret := make([]float64, NSym)
	copy(ret, m.probs[:])
	return ret
}

// Valid is false for the zero Model, which cannot draw anything.
func (m Model) Valid() bool { return len(m.cum) > 0 }

// String gives the model back in the form ParseModel reads.
func (m Model) String() string {
	s := make([]string, NSym)
	for i, p := range m.probs {
		s[i] = strconv.FormatFloat(p, 'g', -1, 64)
	}
	return strings.Join(s, ",")
}

// selectRandom returns the first base whose cumulative boundary
// is at least r.
func (m *Model) selectRandom(r float64) byte {
	for _, item := range m.cum {
		if r <= item.p {
			return item.c
		}
	}
	return m.cum[len(m.cum)-1].c
}
