// 18 Oct 2026

/*
Motif generates a corpus of random DNA sequences, keeps those whose base
composition has enough entropy, saves them and reports the most
frequent substring (motif) of a given size.

Every overlapping window of every sequence is counted. If two motifs are
seen equally often, the one with the longer run of a single base wins
(AAAAA beats ACGTA). If that is also equal, the motif that sorts first
wins, so the answer does not change from run to run.

Usage:
	motif [flags]

The flags are:
	-n nseq
		number of sequences to generate
	-l length
		length of each sequence
	-p probs
		probabilities of A,C,G,T, comma separated, adding up to 1
	-k size
		motif size
	-e threshold
		entropy threshold in bits, from 0 to 2
	-o file
		where to save the corpus, one sequence per line. Empty means do not save.
	-r seed
		random number seed. 0 means seed from the clock.
	-j n
		number of goroutines for generating and counting
	-top n
		also print the n best motifs with their counts
	-prof file
		write a csv file with the entropy and base usage at each position
	-t
		print out timing information

If the corpus cannot be saved, the motif is still reported, but the
program exits with a failure code.
*/
package main
