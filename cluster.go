package vstol

import (
	"sort"

	"github.com/grailbio/base/log"
)

// ClusterOptions tunes the proximity clusterer and every set-algebra
// operation built on it (spec.md §4.2, §6). The zero value is usable but
// almost certainly not what a caller wants: NumThreads of 0 means "let the
// orchestrator pick", MaxNeighborDistance of 0 requires breakpoints to
// coincide exactly, and the type and size tolerances are at their most
// permissive, following fusion.Opts's convention of a plain options struct
// with caller-supplied tolerances.
type ClusterOptions struct {
	NumThreads          int
	MaxNeighborDistance int64
	MatchAllBreakpoints bool
	MatchVariantTypes   bool
	MinInsSizeOverlap   float64
	MinDelSizeOverlap   float64
}

// idPair is an unordered pair of VariantCall ids, canonicalised so (a, b)
// and (b, a) compare equal as map keys.
type idPair struct{ a, b string }

func newIDPair(x, y string) idPair {
	if x <= y {
		return idPair{x, y}
	}
	return idPair{y, x}
}

// bucketEntry is one VariantCall positioned at one of its two breakpoints.
type bucketEntry struct {
	position int64
	call     *VariantCall
}

// splitByChromosome implements the Partitioning step of spec.md §4.2: every
// call is cloned, tagged with its originating list index and Variant id (in
// the clone's transient field, so caller data is never mutated), and inserted into a
// chromosome-keyed bucket twice, once per breakpoint.
func splitByChromosome(lists []*VariantsList) (map[string][]bucketEntry, error) {
	buckets := make(map[string][]bucketEntry)
	for listIndex, list := range lists {
		for _, variant := range list.Variants {
			for _, vc := range variant.VariantCalls {
				if _, ok := VariantTypeClass(vc.VariantType); !ok {
					return nil, E(MalformedInput, vc.ID, "unrecognised variant type: ", vc.VariantType)
				}
				tagged := vc.Clone()
				tagged.transient = &transientOrigin{listIndex: listIndex, variantID: variant.ID}

				buckets[tagged.Chromosome1] = append(buckets[tagged.Chromosome1], bucketEntry{tagged.Position1, tagged})
				buckets[tagged.Chromosome2] = append(buckets[tagged.Chromosome2], bucketEntry{tagged.Position2, tagged})
			}
		}
	}
	return buckets, nil
}

// sortBuckets sorts every bucket's entries by position ascending, in
// parallel across buckets (spec.md §4.2 Sort, §4.6).
func sortBuckets(buckets map[string][]bucketEntry, numThreads int) error {
	chroms := make([]string, 0, len(buckets))
	for c := range buckets {
		chroms = append(chroms, c)
	}
	return runParallel(numThreads, len(chroms), func(i int) error {
		entries := buckets[chroms[i]]
		sort.Slice(entries, func(a, b int) bool { return entries[a].position < entries[b].position })
		return nil
	})
}

// clusterable implements the clustering predicate of spec.md §4.2.
func clusterable(a, b *VariantCall, opts ClusterOptions) (bool, error) {
	// Same-origin pass.
	if a.transient.listIndex == b.transient.listIndex {
		return a.transient.variantID == b.transient.variantID && a.ID != b.ID, nil
	}

	// Cross-origin pass: (a) type compatibility.
	if opts.MatchVariantTypes {
		classA, ok := VariantTypeClass(a.VariantType)
		if !ok {
			return false, E(MalformedInput, a.ID, "unrecognised variant type: ", a.VariantType)
		}
		classB, ok := VariantTypeClass(b.VariantType)
		if !ok {
			return false, E(MalformedInput, b.ID, "unrecognised variant type: ", b.VariantType)
		}
		if classA != classB {
			return false, nil
		}
		if classA == deletionClass {
			if sizeOverlapFraction(a.VariantSize, b.VariantSize) < opts.MinDelSizeOverlap {
				return false, nil
			}
		}
		if classA == insertionClass {
			if sizeOverlapFraction(a.VariantSize, b.VariantSize) < opts.MinInsSizeOverlap {
				return false, nil
			}
		}
	}

	// (b) distance window.
	d := opts.MaxNeighborDistance
	if isNucleotideVariant(a.VariantType) || isNucleotideVariant(b.VariantType) {
		d = 0
	}

	// (c) breakpoint pairing.
	d11 := abs64(a.Position1 - b.Position1)
	d22 := abs64(a.Position2 - b.Position2)
	d12 := abs64(a.Position1 - b.Position2)
	d21 := abs64(a.Position2 - b.Position1)

	if opts.MatchAllBreakpoints {
		straight := a.Chromosome1 == b.Chromosome1 && a.Chromosome2 == b.Chromosome2 && d11 <= d && d22 <= d
		crossed := a.Chromosome1 == b.Chromosome2 && a.Chromosome2 == b.Chromosome1 && d12 <= d && d21 <= d
		return straight || crossed, nil
	}
	return (a.Chromosome1 == b.Chromosome1 && d11 <= d) ||
		(a.Chromosome2 == b.Chromosome2 && d22 <= d) ||
		(a.Chromosome1 == b.Chromosome2 && d12 <= d) ||
		(a.Chromosome2 == b.Chromosome1 && d21 <= d), nil
}

func isNucleotideVariant(variantType string) bool {
	return variantType == SingleNucleotideVariant || variantType == MultiNucleotideVariant
}

func sizeOverlapFraction(sizeA, sizeB int64) float64 {
	max, min := sizeA, sizeB
	if min > max {
		max, min = min, max
	}
	if max == 0 {
		return 0
	}
	return float64(min) / float64(max)
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// sweepBucket emits candidate pairs from one position-sorted bucket using
// the bounded-window sweep of spec.md §4.2: for each i, scan j>i while the
// position window holds, evaluating the clustering predicate, and stop
// expanding j at the first violation.
func sweepBucket(entries []bucketEntry, opts ClusterOptions) (map[idPair]struct{}, error) {
	pairs := make(map[idPair]struct{})
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[j].position-entries[i].position > opts.MaxNeighborDistance {
				break
			}
			ok, err := clusterable(entries[i].call, entries[j].call, opts)
			if err != nil {
				return nil, err
			}
			if ok {
				pairs[newIDPair(entries[i].call.ID, entries[j].call.ID)] = struct{}{}
			}
		}
	}
	return pairs, nil
}

// findCandidatePairs runs the full Proximity Clusterer (spec.md §4.2) over
// lists and returns the set of unordered VariantCall id pairs that satisfy
// the clustering predicate.
func findCandidatePairs(lists []*VariantsList, opts ClusterOptions) (map[idPair]struct{}, error) {
	buckets, err := splitByChromosome(lists)
	if err != nil {
		return nil, err
	}
	if err := sortBuckets(buckets, opts.NumThreads); err != nil {
		return nil, err
	}

	chroms := make([]string, 0, len(buckets))
	for c := range buckets {
		chroms = append(chroms, c)
	}
	log.Debug.Printf("vstol: sweeping %d chromosome buckets", len(chroms))

	localResults := make([]map[idPair]struct{}, len(chroms))
	err = runParallel(opts.NumThreads, len(chroms), func(i int) error {
		pairs, err := sweepBucket(buckets[chroms[i]], opts)
		if err != nil {
			return err
		}
		localResults[i] = pairs
		return nil
	})
	if err != nil {
		return nil, err
	}

	merged := make(map[idPair]struct{})
	for _, local := range localResults {
		for pair := range local {
			merged[pair] = struct{}{}
		}
	}
	return merged, nil
}

// findClusters folds a set of candidate pairs into equivalence classes via
// union-find (spec.md §4.1, §9).
func findClusters(pairs map[idPair]struct{}) [][]string {
	uf := newUnionFind()
	for pair := range pairs {
		uf.union(pair.a, pair.b)
	}
	return uf.clusters()
}
