// 19 Oct 2026

/*
Kmer reads a corpus file written by motif or randseq, one sequence per
line, and reports the most frequent motif of a given size.

Usage:
	kmer [flags] [corpusfile]

Given no file name, it reads from standard input.

The flags are:
	-k size
		motif size
	-j n
		number of goroutines for counting
	-top n
		also print the n best motifs with their counts and longest runs
*/
package main
