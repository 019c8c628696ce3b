package brokenio_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andrew-torda/seqmotif/brokenio"
)

var longstring = "0123456789012345678901234567890123456789"

// TestFailAfter checks that exactly the allowed bytes get through
func TestFailAfter(t *testing.T) {
	for _, limit := range []int{0, 1, 9, 10, 25, len(longstring)} {
		var buf bytes.Buffer
		w := brokenio.NewWriter(&buf)
		w.SetFailAfter(limit)
		_, err := io.Copy(w, strings.NewReader(longstring))
		if limit == len(longstring) {
			if err != nil {
				t.Fatal("limit", limit, "unexpected error", err)
			}
		} else if !errors.Is(err, brokenio.ErrBroken) {
			t.Fatal("limit", limit, "wanted ErrBroken, got", err)
		}
		if got := buf.String(); got != longstring[:limit] {
			t.Fatalf("limit %d got \"%s\"", limit, got)
		}
		if w.NBytes() != limit {
			t.Fatal("NBytes got", w.NBytes(), "want", limit)
		}
	}
}

// TestProb - write many small pieces and check failure rates at the extremes.
func TestProb(t *testing.T) {
	const ncall = 200
	for _, prob := range []float32{0, 1} {
		var buf bytes.Buffer
		w := brokenio.NewWriter(&buf)
		w.SetSeed(1637)
		w.SetProbFail(prob)
		nfail := 0
		for i := 0; i < ncall; i++ {
			if _, err := w.Write([]byte("ab")); err != nil {
				nfail++
			}
		}
		want := int(prob * ncall)
		if nfail != want {
			t.Fatal("prob", prob, "got", nfail, "failures, wanted", want)
		}
	}
}

// TestSomeFail with a middling probability, some writes should
// get through and some not.
func TestSomeFail(t *testing.T) {
	var buf bytes.Buffer
	w := brokenio.NewWriter(&buf)
	w.SetSeed(99)
	w.SetProbFail(0.5)
	nfail := 0
	const ncall = 1000
	for i := 0; i < ncall; i++ {
		if _, err := w.Write([]byte{'x'}); err != nil {
			nfail++
		}
	}
	if nfail == 0 || nfail == ncall {
		t.Fatal("got", nfail, "failures from", ncall)
	}
	if buf.Len() != ncall-nfail {
		t.Fatal("buffer has", buf.Len(), "bytes, wanted", ncall-nfail)
	}
}
