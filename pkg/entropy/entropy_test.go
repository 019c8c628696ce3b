// 27 April 2020

package entropy_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/seqmotif/pkg/corpus"
	. "github.com/andrew-torda/seqmotif/pkg/entropy"
	"github.com/andrew-torda/seqmotif/pkg/seq/common"
)

var seqstring = `AAAA
ACAC
AGAG
ATAT
`

func TestWriteProfile(t *testing.T) {
	p, err := corpus.NewProfile(strings.Fields(seqstring))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteProfile(&buf, p, 10); err != nil {
		t.Fatal(err)
	}
	want := `"pos","entropy","A","C","G","T"
11,0.00,1.00,0.00,0.00,0.00
12,2.00,0.25,0.25,0.25,0.25
13,0.00,1.00,0.00,0.00,0.00
14,2.00,0.25,0.25,0.25,0.25
`
	if buf.String() != want {
		t.Fatalf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestMymain(t *testing.T) {
	fname, err := common.WrtTemp(seqstring)
	if err != nil {
		t.Fatal("Fail writing test file")
	}
	defer os.Remove(fname)
	outfile := filepath.Join(t.TempDir(), "prof.csv")
	if err := Mymain(&CmdFlag{}, fname, outfile); err != nil {
		t.Fatal("bust on simple test", err)
	}
	b, err := os.ReadFile(outfile)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(b), "\n"); n != 5 {
		t.Fatal("wanted 5 lines, got", n)
	}
}

func TestMymainDiffLen(t *testing.T) {
	fname, err := common.WrtTemp("ACGT\nACG\n")
	if err != nil {
		t.Fatal("Fail writing test file")
	}
	defer os.Remove(fname)
	outfile := filepath.Join(t.TempDir(), "prof.csv")
	if err := Mymain(&CmdFlag{}, fname, outfile); !errors.Is(err, corpus.ErrDiffLen) {
		t.Fatal("wanted ErrDiffLen, got", err)
	}
}
