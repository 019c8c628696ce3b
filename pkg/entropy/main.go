// 27 april 2020
package entropy

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/andrew-torda/seqmotif/pkg/corpus"
	. "github.com/andrew-torda/seqmotif/pkg/seq/common"
)

// warnExists checks if a filename exists and prints a warning
// if we will trash a file. It does not return an error.
func warnExists(fname string) {
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(os.Stderr, "Warning, trashing old version of", fname)
	}
}

// WriteProfile writes one line per site with the entropy and the
// fraction of each base. Sites are numbered from 1 + offset.
func WriteProfile(w io.Writer, p *corpus.Profile, offset int) error {
	headings := `"pos","entropy"`
	for i := 0; i < NSym; i++ {
		headings += fmt.Sprintf(`,"%c"`, Alphabet[i])
	}
	if _, err := fmt.Fprintln(w, headings); err != nil {
		return err
	}
	for i, v := range p.SiteEntropy() {
		fmt.Fprintf(w, "%d,%.2f", i+1+offset, v)
		for j := 0; j < NSym; j++ {
			fmt.Fprintf(w, ",%.2f", p.Freq(Alphabet[j], i))
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteProfileFile writes the profile to a named file. If there is no
// filename or the filename is "-", write to standard output.
func WriteProfileFile(fname string, p *corpus.Profile, offset int) error {
	if fname == "" || fname == "-" {
		return WriteProfile(os.Stdout, p, offset)
	}
	warnExists(fname)
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("output file %v: %w", fname, err)
	}
	if err = WriteProfile(fp, p, offset); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

type CmdFlag struct {
	Offset int  // Add this to the site numbering on output
	Time   bool // do we want to print out run time ?
}

// readSeqs reads from a file or, given no name, standard input.
func readSeqs(infile string) ([]string, error) {
	if infile == "" || infile == "-" {
		return corpus.Read(os.Stdin)
	}
	return corpus.ReadFile(infile)
}

// Mymain is the main function for calculating per site entropy of a
// corpus file and writing it to a csv file.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	if flags.Time {
		startTime := time.Now()
		end := func() { // Wrapping in a closure is helpful. Gives the right time.
			fmt.Fprintln(os.Stderr, "finished after", time.Since(startTime).Milliseconds(), "ms")
		}
		defer end()
	}
	seqs, err := readSeqs(infile)
	if err != nil {
		return fmt.Errorf("Fail reading sequences: %w", err)
	}
	prof, err := corpus.NewProfile(seqs)
	if err != nil {
		return fmt.Errorf("building profile: %w", err)
	}
	return WriteProfileFile(outfile, prof, flags.Offset)
}
