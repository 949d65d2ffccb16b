package vstol

import "sort"

// VariantsList is an unordered collection of Variants. There is no global
// uniqueness constraint on Variant ids beyond what a single operation
// constructs.
type VariantsList struct {
	Variants []*Variant `json:"variants"`
}

// NewVariantsList returns an empty VariantsList.
func NewVariantsList() *VariantsList {
	return &VariantsList{}
}

// AddVariant appends v.
func (vl *VariantsList) AddVariant(v *Variant) {
	vl.Variants = append(vl.Variants, v)
}

// Clone returns a deep copy of vl.
func (vl *VariantsList) Clone() *VariantsList {
	clone := &VariantsList{Variants: make([]*Variant, len(vl.Variants))}
	for i, v := range vl.Variants {
		clone.Variants[i] = v.Clone()
	}
	return clone
}

// VariantCallIDs returns the ids of every VariantCall across every Variant
// in vl.
func (vl *VariantsList) VariantCallIDs() []string {
	var ids []string
	for _, v := range vl.Variants {
		for _, vc := range v.VariantCalls {
			ids = append(ids, vc.ID)
		}
	}
	return ids
}

// Sort orders vl.Variants by their first member call's Chromosome1 and
// Position1, ascending. Variants with no member calls sort first.
func (vl *VariantsList) Sort() {
	sort.SliceStable(vl.Variants, func(i, j int) bool {
		a, b := vl.Variants[i], vl.Variants[j]
		if len(a.VariantCalls) == 0 || len(b.VariantCalls) == 0 {
			return len(a.VariantCalls) < len(b.VariantCalls)
		}
		ca, cb := a.VariantCalls[0], b.VariantCalls[0]
		if ca.Chromosome1 != cb.Chromosome1 {
			return ca.Chromosome1 < cb.Chromosome1
		}
		return ca.Position1 < cb.Position1
	})
}
