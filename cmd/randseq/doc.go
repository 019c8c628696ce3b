// 31 July 2020

/*

Randseq makes a corpus of random DNA sequences and writes it to a file,
one sequence per line.
Usage:
	randseq [options] fname nseq length
will generate nseq sequences of length length, keep those whose base
composition has enough entropy and write them to fname. A fname of "-"
means standard output.

Flags:
	-p
		probabilities of A,C,G,T, comma separated, adding up to 1
	-e
		entropy threshold in bits. Sequences below this are thrown away.
	-r
		random number seed. 0 seeds from the clock.
	-j
		number of goroutines generating sequences

The number of sequences tried and kept is printed to standard error.
*/
package main
