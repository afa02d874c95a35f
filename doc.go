// Package sigalign implements cutoff-parameterized gapped sequence
// alignment: given a query and a target database, it returns every
// alignment whose length is at least MinLen and whose penalty-per-length
// is at most MaxPpL.
//
// The engine seeds candidate alignments from exact k-mer "anchors" found
// through a caller-supplied PatternLocator, extends each anchor outward
// with a dropout variant of the wavefront alignment algorithm (WFA) bounded
// by a precomputed spare-penalty budget, and deduplicates overlapping
// anchor chains so that each maximal chain produces exactly one alignment.
//
// Two modes are supported: SemiGlobal, where one of query or target must
// align end to end, and Local, where any substring pair satisfying the
// cutoff is reported.
package sigalign
