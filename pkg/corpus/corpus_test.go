// 16 Oct 2026

package corpus_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/snksoft/crc"

	"github.com/andrew-torda/seqmotif/pkg/corpus"
	"github.com/andrew-torda/seqmotif/pkg/seq/common"
)

var someSeqs = []string{"ACGT", "AAAA", "TTGCA", "G"}

// TestAdd has many goroutines adding at once. Nothing may get lost.
func TestAdd(t *testing.T) {
	const nproc, nper = 16, 500
	c := corpus.New(0)
	var wg sync.WaitGroup
	for i := 0; i < nproc; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < nper; j++ {
				c.Add(2, "ACGT")
			}
		}()
	}
	wg.Wait()
	if c.Len() != nproc*nper {
		t.Fatal("got", c.Len(), "sequences, wanted", nproc*nper)
	}
	if c.NTried() != 2*nproc*nper {
		t.Fatal("got", c.NTried(), "tried, wanted", 2*nproc*nper)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	sum, err := corpus.Write(&buf, someSeqs)
	if err != nil {
		t.Fatal(err)
	}
	want := "ACGT\nAAAA\nTTGCA\nG\n"
	if buf.String() != want {
		t.Fatalf("wrote \"%s\" wanted \"%s\"", buf.String(), want)
	}
	if wantSum := crc.CalculateCRC(crc.CRC32, []byte(want)); sum != wantSum {
		t.Fatalf("crc got %x want %x", sum, wantSum)
	}
}

// TestRoundTrip writes a file and maps it back in
func TestRoundTrip(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "corpus.txt")
	if _, err := corpus.WriteFile(fname, someSeqs); err != nil {
		t.Fatal(err)
	}
	got, err := corpus.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(someSeqs, got); diff != "" {
		t.Fatal("round trip (-want +got):\n", diff)
	}
}

func TestReadOdd(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"ACGT", []string{"ACGT"}},
		{"ACGT\r\n\nGG\n\n", []string{"ACGT", "GG"}},
	}
	for _, tt := range tests {
		fname, err := common.WrtTemp(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		defer os.Remove(fname)
		got, err := corpus.ReadFile(fname)
		if err != nil {
			t.Fatal("reading", tt.in, err)
		}
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("reading %q (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestReadBad(t *testing.T) {
	fname, err := common.WrtTemp("ACGT\nACNT\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	if _, err := corpus.ReadFile(fname); !errors.Is(err, corpus.ErrBadSym) {
		t.Fatal("wanted ErrBadSym, got", err)
	}
	if _, err := corpus.ReadFile(fname + "_not_there"); err == nil {
		t.Fatal("no error from missing file")
	}
}
