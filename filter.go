package vstol

import "sync"

// Filter returns a new VariantsList containing the Variants of vl that pass
// every filter in filters (spec.md §4.4, §6). Evaluation across Variants is
// parallelised with runParallel; within a Variant, filters are evaluated in
// order and the first failure short-circuits the rest.
func (vl *VariantsList) Filter(filters []VariantFilter, numThreads int) (*VariantsList, error) {
	kept := make([]bool, len(vl.Variants))
	var mu sync.Mutex
	var firstErr error

	err := runParallel(numThreads, len(vl.Variants), func(i int) error {
		v := vl.Variants[i]
		for _, f := range filters {
			passed, err := f.keep(v)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return err
			}
			if !passed {
				return nil
			}
		}
		kept[i] = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}

	result := NewVariantsList()
	for i, keep := range kept {
		if keep {
			result.AddVariant(vl.Variants[i].Clone())
		}
	}
	return result, nil
}
