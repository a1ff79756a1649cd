// Package xcover implements Donald Knuth's dancing-cells algorithm for the
// exact cover problem with colors.
//
// # Overview
//
// An exact cover problem partitions a ground set of items into primary
// items (which must be covered exactly once) and secondary items (which may
// be covered at most once, and only if every option touching them agrees on
// a color). A collection of options — each a subset of items — is searched
// for every subcollection that covers the primary items exactly once while
// respecting the secondary color constraints.
//
// Two enumeration modes are provided:
//
//   - Covers / CoversBool yield each solution as a list of option indices.
//   - CoversZDD yields a stream of Zero-suppressed Decision Diagram node
//     records that compactly represent the entire family of solutions,
//     optionally memoizing isomorphic subproblems so combinatorially large
//     solution families (e.g. perfect matchings) can be counted without
//     enumerating every member.
//
// # Basic usage
//
//	options := [][]string{
//	    {"c", "e"},
//	    {"a", "d", "g"},
//	    {"b", "c", "f"},
//	    {"a", "d", "f"},
//	    {"b", "g"},
//	    {"d", "e", "g"},
//	}
//
//	solutions, err := xcover.Covers(context.Background(), options)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for solution := range solutions {
//	    fmt.Println(solution) // [0 3 4]
//	}
//
// # Performance considerations
//
//   - Prefer WithHeuristic(Leftmost) when a stable ZDD variable order is
//     required by a downstream BDD/ZDD consumer.
//   - WithMemo(true) (the default for CoversZDD) collapses isomorphic
//     residual subproblems into shared ZDD nodes; disable it only when
//     profiling shows the signature hashing dominates for a small problem.
//   - A solve owns its substrate exclusively; run independent solves
//     concurrently by calling Covers/CoversZDD from separate goroutines, one
//     encoded Problem copy per goroutine.
package xcover
