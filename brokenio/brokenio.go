// brokenio is a wrapper around an io.Writer. It lets us set the point
// and the rate at which writes fail.
// Typical use: in a test you have a file or buffer that sequences are
// written to. You write
// wrtr = brokenio.NewWriter(wrtr) to wrap the old writer. Everything then
// functions as before, but with artificial errors.
// A failed write stores the bytes that fit before the failure point and
// returns a short count with ErrBroken.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is what every artificial failure wraps.
var ErrBroken = errors.New("artificial write failure")

// A BrknWrtr is modelled on the writers in the standard library,
// but with variables controlling when writes fail.
// probFail is the fraction of calls that fail, so a value of 0.05 means
// failure in 5% of the cases. failAfter, if not negative, is the number
// of bytes which get through before every further write fails.
// If verbose is true, print out the amount of data on each failure.
type BrknWrtr struct {
	wrtr_orig io.Writer // Wrapped writer
	rnd       *rand.Rand
	probFail  float32
	failAfter int
	nCalled   int
	nByte     int
	verbose   bool
}

// dfltWriter sets default values for a new brokenio writer.
var dfltWriter = BrknWrtr{
	wrtr_orig: nil,
	probFail:  0,
	failAfter: -1,
	verbose:   false,
}

// SetVerbose sets the verbosity flag to true or false
func (w *BrknWrtr) SetVerbose(newV bool) { w.verbose = newV }

// SetProbFail set the probability of a write failing.
// It must be between zero and 1. We do not check if the argument is valid.
func (w *BrknWrtr) SetProbFail(prob float32) { w.probFail = prob }

// SetFailAfter makes every write fail once n bytes have been written.
// A negative n turns this off.
func (w *BrknWrtr) SetFailAfter(n int) { w.failAfter = n }

// SetSeed gives the writer its own random number source, so failures
// are reproducible.
func (w *BrknWrtr) SetSeed(iseed int64) { w.rnd = rand.New(rand.NewSource(iseed)) }

// NBytes is the number of bytes passed through to the wrapped writer.
func (w *BrknWrtr) NBytes() int { return w.nByte }

// NewWriter returns a new Writer - a wrapper around the old one
func NewWriter(wIn io.Writer) *BrknWrtr {
	var wOut = dfltWriter
	wOut.wrtr_orig = wIn
	wOut.rnd = rand.New(rand.NewSource(1))
	return &wOut
}

// fail writes what it may of p, then returns the error.
func (w *BrknWrtr) fail(p []byte, nkeep int) (int, error) {
	n, err := w.wrtr_orig.Write(p[:nkeep])
	w.nByte += n
	if err != nil {
		return n, err
	}
	if w.verbose {
		fmt.Println("Failing write", w.nCalled, "after", w.nByte, "bytes")
	}
	return n, fmt.Errorf("call %d, %d of %d bytes written: %w", w.nCalled, n, len(p), ErrBroken)
}

// Write passes p to the wrapped writer, unless this call has been
// chosen to fail.
func (w *BrknWrtr) Write(p []byte) (int, error) {
	w.nCalled++
	if w.failAfter >= 0 && w.nByte+len(p) > w.failAfter {
		return w.fail(p, w.failAfter-w.nByte)
	}
	if w.probFail > 0 && w.rnd.Float32() < w.probFail {
		return w.fail(p, 0)
	}
	n, err := w.wrtr_orig.Write(p)
	w.nByte += n
	return n, err
}
