// 27 april 2020

/*
Entropy reads a corpus file, one sequence per line, and calculates the
entropy at each position together with the fraction of each base.
All sequences must be the same length.

Given no explicit input path, it reads from standard input.
Given no output filename, it write to standard output.
Logarithms are base 2, so a site can have up to 2 bits.

The output is a csv file for plotting with some other program. It has a header line which programs like excel like, but gnuplot is less keen on. R's read.csv() has an option to tell it there is a header line.

Usage:
	entropy [flags] [input [output]]

The flags are:
	-f oFfset
		Output for plotting numbers the first site starting from 1. Use an offset to be added or subtracted (if negative) to each number.
	-t
		print out timing information
*/
package main
