// 29 Apr 2020

// Package common holds the few constants and helpers shared by the
// sequence and motif packages and the command line tools.
package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// Alphabet is the set of bases we generate and count, in the order
// used by probability models and count tables.
const Alphabet = "ACGT"

// NSym is the number of symbols in Alphabet
const NSym = len(Alphabet)

// symNdx maps a base to its place in Alphabet. Anything else gets BadSym.
var symNdx [256]int8

// BadSym is returned by SymNdx for a byte not in the alphabet
const BadSym = -1

func init() {
	for i := range symNdx {
		symNdx[i] = BadSym
	}
	for i := 0; i < NSym; i++ {
		symNdx[Alphabet[i]] = int8(i)
	}
}

// SymNdx returns the index of c in Alphabet, or BadSym.
func SymNdx(c byte) int { return int(symNdx[c]) }

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}
