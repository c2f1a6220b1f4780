// Package softmask finds soft-masked runs in nucleotide sequences.
//
// A soft-masked base is written in lowercase. A run is a maximal stretch of
// consecutive soft-masked bases and is reported as a 0-based half-open
// Interval, which is the coordinate convention BED uses directly.
//
// Case is decided on the raw byte: only ASCII 'a'..'z' count as masked.
// Ambiguity codes, gaps and non-ASCII bytes are unmasked whatever they look like.
package softmask
