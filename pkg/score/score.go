// 14 Oct 2026

// Package score has the two small measures we apply to single
// sequences: Shannon entropy of the base composition and the
// length of the longest homopolymer run.
package score

import (
	"math"

	. "github.com/andrew-torda/seqmotif/pkg/seq/common"
)

// seqType lets one loop serve both strings and byte slices.
type seqType interface{ ~string | ~[]byte }

func entropy[S seqType](s S) float64 {
	if len(s) == 0 {
		return 0
	}
	var counts [NSym]int
	for i := 0; i < len(s); i++ {
		if j := SymNdx(s[i]); j != BadSym {
			counts[j]++
		}
	}
	n := float64(len(s))
	var ntrpy float64
	for _, c := range counts {
		if c == 0 { // avoid log(0)
			continue
		}
		f := float64(c) / n
		ntrpy -= f * math.Log2(f)
	}
	return ntrpy
}

func longestRun[S seqType](s S) int {
	if len(s) == 0 {
		return 0
	}
	best, cur := 1, 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			cur++
			if cur > best {
				best = cur
			}
		} else {
			cur = 1
		}
	}
	return best
}

// Entropy returns the Shannon entropy in bits of the base composition
// of s. Only A, C, G and T are counted, but the length of the whole
// sequence is the denominator. An empty sequence has entropy zero.
func Entropy(s []byte) float64 { return entropy(s) }

// EntropyStr is Entropy for a string.
func EntropyStr(s string) float64 { return entropy(s) }

// LongestRun returns the length of the longest block of identical
// consecutive characters. Zero for an empty sequence, otherwise at least 1.
func LongestRun(s []byte) int { return longestRun(s) }

// LongestRunStr is LongestRun for a string. The motif counter calls
// it on map keys, so there is no conversion to []byte.
func LongestRunStr(s string) int { return longestRun(s) }
