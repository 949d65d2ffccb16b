package vstol

// Overlap reports, for every VariantCall in vl, the ids of every
// GenomicRange in regions that overlaps either of its breakpoints once each
// has been widened by padding on both sides (spec.md §4.5). The result maps
// VariantCall id to the sorted-by-discovery list of overlapping range ids; a
// call with no overlaps is omitted.
func (vl *VariantsList) Overlap(regions *GenomicRangesList, padding int64, numThreads int) (map[string][]string, error) {
	var calls []*VariantCall
	for _, v := range vl.Variants {
		calls = append(calls, v.VariantCalls...)
	}

	results := make([][]string, len(calls))
	err := runParallel(numThreads, len(calls), func(i int) error {
		vc := calls[i]
		seen := make(map[string]bool)
		var ids []string
		for _, hit := range regions.FindOverlaps(vc.Chromosome1, vc.Position1-padding, vc.Position1+padding) {
			if id := hit.ID(); !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
		for _, hit := range regions.FindOverlaps(vc.Chromosome2, vc.Position2-padding, vc.Position2+padding) {
			if id := hit.ID(); !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
		results[i] = ids
		return nil
	})
	if err != nil {
		return nil, err
	}

	overlaps := make(map[string][]string)
	for i, ids := range results {
		if len(ids) > 0 {
			overlaps[calls[i].ID] = ids
		}
	}
	return overlaps, nil
}
