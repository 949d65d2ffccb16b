package vstol

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Variant is a named grouping of VariantCalls believed to describe the same
// underlying event. Member calls are kept sorted by their first breakpoint
// position, and must all agree on both breakpoint chromosomes (spec.md §3).
type Variant struct {
	ID           string         `json:"id"`
	VariantCalls []*VariantCall `json:"variant_calls"`
}

// NewVariant returns an empty Variant with the given id.
func NewVariant(id string) *Variant {
	return &Variant{ID: id}
}

// AddVariantCall inserts vc into v, keeping VariantCalls sorted by
// Position1. It also validates the chromosome-sharing invariant once the
// Variant has at least one member.
func (v *Variant) AddVariantCall(vc *VariantCall) error {
	if len(v.VariantCalls) > 0 {
		first := v.VariantCalls[0]
		if first.Chromosome1 != vc.Chromosome1 || first.Chromosome2 != vc.Chromosome2 {
			return E(InternalInvariant, v.ID,
				"variant mixes calls with different breakpoint chromosomes: ", vc.ID)
		}
	}
	idx := sort.Search(len(v.VariantCalls), func(i int) bool {
		return v.VariantCalls[i].Position1 >= vc.Position1
	})
	v.VariantCalls = append(v.VariantCalls, nil)
	copy(v.VariantCalls[idx+1:], v.VariantCalls[idx:])
	v.VariantCalls[idx] = vc
	return nil
}

// Clone returns a deep copy of v.
func (v *Variant) Clone() *Variant {
	clone := &Variant{ID: v.ID, VariantCalls: make([]*VariantCall, len(v.VariantCalls))}
	for i, vc := range v.VariantCalls {
		clone.VariantCalls[i] = vc.Clone()
	}
	return clone
}

// numericValues collects the named numeric attribute across every member
// call. An unrecognised attribute name yields a MalformedInput error.
func (v *Variant) numericValues(attribute string) ([]float64, error) {
	if !numericAttributes[attribute] {
		return nil, E(MalformedInput, v.ID, "not a numeric attribute: ", attribute)
	}
	values := make([]float64, len(v.VariantCalls))
	for i, vc := range v.VariantCalls {
		value, _ := vc.numericAttribute(attribute)
		values[i] = value
	}
	return values, nil
}

// Mean returns the arithmetic mean of attribute across v's member calls.
func (v *Variant) Mean(attribute string) (float64, error) {
	values, err := v.numericValues(attribute)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, E(ArithmeticUndefined, v.ID, "mean of an empty set")
	}
	return floats.Sum(values) / float64(len(values)), nil
}

// Median returns the lower/upper-middle mean of attribute across v's member
// calls: the middle element for an odd count, the mean of the two middle
// elements for an even count (spec.md §4.4).
func (v *Variant) Median(attribute string) (float64, error) {
	values, err := v.numericValues(attribute)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, E(ArithmeticUndefined, v.ID, "median of an empty set")
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2, nil
	}
	return sorted[n/2], nil
}

// Min returns the minimum value of attribute across v's member calls.
func (v *Variant) Min(attribute string) (float64, error) {
	values, err := v.numericValues(attribute)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, E(ArithmeticUndefined, v.ID, "min of an empty set")
	}
	return floats.Min(values), nil
}

// Max returns the maximum value of attribute across v's member calls.
func (v *Variant) Max(attribute string) (float64, error) {
	values, err := v.numericValues(attribute)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, E(ArithmeticUndefined, v.ID, "max of an empty set")
	}
	return floats.Max(values), nil
}
