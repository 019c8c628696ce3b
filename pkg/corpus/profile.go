// 16 Oct 2026

package corpus

import (
	"fmt"
	"math"

	"github.com/andrew-torda/matrix"

	. "github.com/andrew-torda/seqmotif/pkg/seq/common"
)

// Profile is the usage of each base at each position over a set of
// sequences of the same length.
// freq.Mat looks like [NSym][length_of_seq]. It starts as counts and
// is normalised to fractions, so it can stay float32.
type Profile struct {
	freq *matrix.FMatrix2d
	nseq int
}

// NewProfile counts the bases at each site and converts the counts to
// fractions. All sequences must be the same length.
func NewProfile(seqs []string) (*Profile, error) {
	if len(seqs) == 0 {
		return nil, ErrEmpty
	}
	ncol := len(seqs[0])
	p := &Profile{freq: matrix.NewFMatrix2d(NSym, ncol), nseq: len(seqs)}
	mat := p.freq.Mat
	for n, s := range seqs {
		if len(s) != ncol {
			return nil, fmt.Errorf("sequence %d length %d, expected %d: %w", n, len(s), ncol, ErrDiffLen)
		}
		for i := 0; i < len(s); i++ {
			isym := SymNdx(s[i])
			if isym == BadSym {
				return nil, fmt.Errorf("sequence %d position %d: %w", n, i, ErrBadSym)
			}
			mat[isym][i] += 1
		}
	}
	total := float32(len(seqs))
	for irow := range mat {
		for icol := range mat[irow] {
			mat[irow][icol] /= total
		}
	}
	return p, nil
}

// Len returns the number of sites
func (p *Profile) Len() int {
	_, ncol := p.freq.Size()
	return ncol
}

// NSeq is the number of sequences the profile was built from.
func (p *Profile) NSeq() int { return p.nseq }

// Freq returns the fraction of sequences with base c at site pos.
// A base outside the alphabet has frequency zero.
func (p *Profile) Freq(c byte, pos int) float32 {
	isym := SymNdx(c)
	if isym == BadSym {
		return 0
	}
	return p.freq.Mat[isym][pos]
}

// SiteEntropy returns the entropy in bits at each site.
func (p *Profile) SiteEntropy() []float32 {
	nrow, ncol := p.freq.Size()
	entropy := make([]float32, ncol)
	for icol := 0; icol < ncol; icol++ {
		total := 0.0
		for irow := 0; irow < nrow; irow++ {
			f := float64(p.freq.Mat[irow][icol])
			if f == 0.0 {
				continue
			}
			total += f * math.Log2(f)
		}
		entropy[icol] = float32(math.Abs(total))
	}
	return entropy
}
