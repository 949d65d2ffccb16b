// Package vstol implements set-algebra operations over collections of
// structural variant calls produced by heterogeneous callers: merge,
// intersect, subtract, compare, filter, and region overlap.
//
// The hard part is equivalence clustering: deciding which calls from
// independently produced lists describe the same underlying event,
// under configurable tolerances on breakpoint proximity, variant-type
// compatibility, and size similarity. A proximity clusterer pairs calls
// by a bounded-window sweep over position-sorted buckets, and a
// disjoint-set union turns pairwise matches into equivalence classes.
//
// File parsing, language bindings, and BAM-based alignment scoring are
// out of scope; callers exchange VariantCall/VariantsList values as
// JSON using the field names documented on each type.
package vstol
