package vstol

import (
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// clusterInto runs the proximity clusterer over lists and rebuilds Variants
// from the resulting equivalence classes, one fresh uuid per output Variant
// (spec.md §4.2, §4.3). Every member VariantCall has its transient origin
// stripped before it is attached to the rebuilt Variant.
func clusterInto(lists []*VariantsList, opts ClusterOptions) (*VariantsList, error) {
	byID := make(map[string]*VariantCall)
	for _, list := range lists {
		for _, v := range list.Variants {
			for _, vc := range v.VariantCalls {
				byID[vc.ID] = vc
			}
		}
	}

	pairs, err := findCandidatePairs(lists, opts)
	if err != nil {
		return nil, err
	}
	clusters := findClusters(pairs)

	clustered := make(map[string]bool, len(byID))
	result := NewVariantsList()
	for _, ids := range clusters {
		variant := NewVariant(uuid.NewString())
		for _, id := range ids {
			vc, ok := byID[id]
			if !ok {
				continue
			}
			clustered[id] = true
			if err := variant.AddVariantCall(vc.StripTransient()); err != nil {
				return nil, err
			}
		}
		if len(variant.VariantCalls) > 0 {
			result.AddVariant(variant)
		}
	}

	// Every call not assigned to a multi-member cluster becomes its own
	// singleton Variant, so no input call is ever dropped by clustering.
	for _, list := range lists {
		for _, v := range list.Variants {
			for _, vc := range v.VariantCalls {
				if clustered[vc.ID] {
					continue
				}
				variant := NewVariant(uuid.NewString())
				if err := variant.AddVariantCall(vc.StripTransient()); err != nil {
					return nil, err
				}
				result.AddVariant(variant)
			}
		}
	}
	return result, nil
}

// Merge combines every input VariantsList into one, folding clusterable
// calls from different lists into shared Variants (spec.md §6). Merging a
// single list reproduces its grouping through the same-origin pass of the
// clustering predicate, as long as each input Variant's members are linked
// by breakpoints within MaxNeighborDistance of one another: the sweep never
// compares calls farther apart than that, so such members are not grouped
// back together.
func Merge(lists []*VariantsList, opts ClusterOptions) (*VariantsList, error) {
	return clusterInto(lists, opts)
}

// Intersect runs the Proximity Clusterer and union-find over lists like
// Merge, but emits only the multi-member components whose calls originate
// from at least two distinct input lists; components confined to a single
// list, and every singleton, are dropped (spec.md §4.3, §6).
func Intersect(lists []*VariantsList, opts ClusterOptions) (*VariantsList, error) {
	byID := make(map[string]*VariantCall)
	listOf := make(map[string]int)
	for i, list := range lists {
		for _, v := range list.Variants {
			for _, vc := range v.VariantCalls {
				byID[vc.ID] = vc
				listOf[vc.ID] = i
			}
		}
	}

	pairs, err := findCandidatePairs(lists, opts)
	if err != nil {
		return nil, err
	}
	clusters := findClusters(pairs)

	result := NewVariantsList()
	for _, ids := range clusters {
		origins := make(map[int]bool)
		for _, id := range ids {
			origins[listOf[id]] = true
		}
		if len(origins) < 2 {
			continue
		}
		variant := NewVariant(uuid.NewString())
		for _, id := range ids {
			vc, ok := byID[id]
			if !ok {
				continue
			}
			if err := variant.AddVariantCall(vc.StripTransient()); err != nil {
				return nil, err
			}
		}
		if len(variant.VariantCalls) > 0 {
			result.AddVariant(variant)
		}
	}
	return result, nil
}

// Subtract returns the Variants of a that do not cluster with any Variant
// of b (spec.md §6): every Variant of a with a member call in
// Intersect([a, b]) is dropped whole.
func Subtract(a, b *VariantsList, opts ClusterOptions) (*VariantsList, error) {
	intersected, err := Intersect([]*VariantsList{a, b}, opts)
	if err != nil {
		return nil, err
	}
	excluded := make(map[string]bool)
	for _, v := range intersected.Variants {
		for _, vc := range v.VariantCalls {
			excluded[vc.ID] = true
		}
	}

	result := NewVariantsList()
	for _, v := range a.Variants {
		shared := false
		for _, vc := range v.VariantCalls {
			if excluded[vc.ID] {
				shared = true
				break
			}
		}
		if shared {
			continue
		}
		result.AddVariant(v.Clone())
	}
	return result, nil
}

// CompareResult partitions two VariantsLists by set-algebra membership
// (spec.md §6): Common holds the clustered intersection, AOnly and BOnly
// hold the Variants of each side that share no call with Common.
type CompareResult struct {
	Common *VariantsList
	AOnly  *VariantsList
	BOnly  *VariantsList
}

// Compare computes Intersect, and both complements, running the two
// independent subtractions concurrently since neither depends on the
// other's result.
func Compare(a, b *VariantsList, opts ClusterOptions) (*CompareResult, error) {
	common, err := Intersect([]*VariantsList{a, b}, opts)
	if err != nil {
		return nil, err
	}

	var aOnly, bOnly *VariantsList
	var g errgroup.Group
	g.Go(func() error {
		var err error
		aOnly, err = Subtract(a, b, opts)
		return err
	})
	g.Go(func() error {
		var err error
		bOnly, err = Subtract(b, a, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &CompareResult{Common: common, AOnly: aOnly, BOnly: bOnly}, nil
}
