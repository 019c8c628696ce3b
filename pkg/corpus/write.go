// 15 Oct 2026

package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/snksoft/crc"
)

// Write puts the sequences to w, one per line, with no header.
// It returns the CRC-32 of everything written, so a caller can note
// what went to disk without adding anything to the file.
func Write(w io.Writer, seqs []string) (uint64, error) {
	h := crc.NewHash(crc.CRC32)
	bw := bufio.NewWriter(io.MultiWriter(w, h))
	for i, s := range seqs {
		if _, err := bw.WriteString(s); err != nil {
			return 0, fmt.Errorf("writing sequence %d: %w", i, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return 0, fmt.Errorf("writing sequence %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("flushing sequences: %w", err)
	}
	return h.CRC(), nil
}

// WriteFile creates (or trashes) fname and writes the sequences to it.
func WriteFile(fname string, seqs []string) (uint64, error) {
	fp, err := os.Create(fname)
	if err != nil {
		return 0, fmt.Errorf("corpus output file %v: %w", fname, err)
	}
	sum, err := Write(fp, seqs)
	if cerr := fp.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing %v: %w", fname, cerr)
	}
	return sum, err
}
