// 16 Oct 2026

package corpus

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	. "github.com/andrew-torda/seqmotif/pkg/seq/common"
)

// ReadFile maps a corpus file into memory and returns its
// sequences. Blank lines and a trailing carriage return are
// ignored. Any other character outside ACGT is an error.
func ReadFile(fname string) ([]string, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 { // mmap will not map an empty file
		return nil, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %v: %w", fname, err)
	}
	defer mm.Unmap()
	return split(mm, fname)
}

// split breaks the mapped bytes into lines. The strings are copies,
// so they live on after the unmap.
func split(buf []byte, fname string) ([]string, error) {
	seqs := make([]string, 0, bytes.Count(buf, []byte{'\n'})+1)
	for lineno := 1; len(buf) > 0; lineno++ {
		var line []byte
		if i := bytes.IndexByte(buf, '\n'); i == -1 {
			line, buf = buf, nil
		} else {
			line, buf = buf[:i], buf[i+1:]
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 {
			continue
		}
		for _, c := range line {
			if SymNdx(c) == BadSym {
				return nil, fmt.Errorf("%v line %d, char %q: %w", fname, lineno, c, ErrBadSym)
			}
		}
		seqs = append(seqs, string(line))
	}
	return seqs, nil
}

// Read gets sequences from a reader, such as standard input, which
// cannot be mapped.
func Read(r io.Reader) ([]string, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return split(buf, "input")
}
