package vstol

import "fmt"

// VariantFilter is one predicate a VariantsList.Filter call evaluates
// against each Variant (spec.md §4.4), grounded on variant_filter.rs's
// quantifier/attribute/operator/value shape.
type VariantFilter struct {
	Quantifier string      `json:"quantifier"`
	Attribute  string      `json:"attribute"`
	Operator   string      `json:"operator"`
	Value      interface{} `json:"value"`
	SampleIDs  []string    `json:"sample_ids"`
}

// selectedCalls returns v's member calls restricted to f.SampleIDs, or every
// member call if f.SampleIDs is empty.
func (f VariantFilter) selectedCalls(v *Variant) []*VariantCall {
	if len(f.SampleIDs) == 0 {
		return v.VariantCalls
	}
	wanted := make(map[string]bool, len(f.SampleIDs))
	for _, id := range f.SampleIDs {
		wanted[id] = true
	}
	var calls []*VariantCall
	for _, vc := range v.VariantCalls {
		if wanted[vc.SampleID] {
			calls = append(calls, vc)
		}
	}
	return calls
}

// keep evaluates f against v, returning whether v passes. An empty in-scope
// call set (no member call matches f.SampleIDs) is vacuously satisfying for
// all — the same fall-through-to-true an empty loop gives
// variant_filter.rs::keep's all branch — but not for any, which needs at
// least one passing call to ever return true.
func (f VariantFilter) keep(v *Variant) (bool, error) {
	calls := f.selectedCalls(v)
	if len(calls) == 0 {
		switch f.Quantifier {
		case QuantifierAll:
			return true, nil
		case QuantifierAny:
			return false, nil
		case QuantifierAverage, QuantifierMedian, QuantifierMin, QuantifierMax:
			return false, E(ArithmeticUndefined, v.ID, "quantifier ", f.Quantifier, " over an empty sample scope")
		default:
			return false, E(MalformedInput, v.ID, "unrecognised quantifier: ", f.Quantifier)
		}
	}

	switch f.Quantifier {
	case QuantifierAll, QuantifierAny:
		return f.keepByMember(calls)
	case QuantifierAverage, QuantifierMedian, QuantifierMin, QuantifierMax:
		return f.keepByAggregate(calls)
	default:
		return false, E(MalformedInput, v.ID, "unrecognised quantifier: ", f.Quantifier)
	}
}

func (f VariantFilter) keepByMember(calls []*VariantCall) (bool, error) {
	anyPassed := false
	for _, vc := range calls {
		passed, err := f.evaluateOne(vc)
		if err != nil {
			return false, err
		}
		if passed {
			anyPassed = true
			if f.Quantifier == QuantifierAny {
				return true, nil
			}
		} else if f.Quantifier == QuantifierAll {
			return false, nil
		}
	}
	if f.Quantifier == QuantifierAll {
		return true, nil
	}
	return anyPassed, nil
}

func (f VariantFilter) keepByAggregate(calls []*VariantCall) (bool, error) {
	if !numericAttributes[f.Attribute] {
		return false, E(MalformedInput, "", "quantifier ", f.Quantifier, " requires a numeric attribute, got: ", f.Attribute)
	}
	values := make([]float64, len(calls))
	for i, vc := range calls {
		value, _ := vc.numericAttribute(f.Attribute)
		values[i] = value
	}
	aggregate, err := aggregateValues(f.Quantifier, values)
	if err != nil {
		return false, err
	}
	want, ok := toFloat(f.Value)
	if !ok {
		return false, E(MalformedInput, "", "filter value for numeric attribute ", f.Attribute, " must be a number")
	}
	return compareNumeric(f.Operator, aggregate, want)
}

// evaluateOne applies f's operator and value to a single VariantCall's
// attribute, dispatching on whether the attribute is string- or
// numeric-valued.
func (f VariantFilter) evaluateOne(vc *VariantCall) (bool, error) {
	if numericAttributes[f.Attribute] {
		value, _ := vc.numericAttribute(f.Attribute)
		want, ok := toFloat(f.Value)
		if !ok {
			return false, E(MalformedInput, vc.ID, "filter value for numeric attribute ", f.Attribute, " must be a number")
		}
		return compareNumeric(f.Operator, value, want)
	}
	if stringAttributes[f.Attribute] {
		value, _ := vc.stringAttribute(f.Attribute)
		return compareString(f.Operator, value, f.Value)
	}
	return false, E(MalformedInput, vc.ID, "unrecognised attribute: ", f.Attribute)
}

func aggregateValues(quantifier string, values []float64) (float64, error) {
	switch quantifier {
	case QuantifierAverage:
		var sum float64
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values)), nil
	case QuantifierMedian:
		return medianOf(values), nil
	case QuantifierMin:
		min := values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
		}
		return min, nil
	case QuantifierMax:
		max := values[0]
		for _, v := range values[1:] {
			if v > max {
				max = v
			}
		}
		return max, nil
	default:
		return 0, E(MalformedInput, "", "unrecognised quantifier: ", quantifier)
	}
}

func medianOf(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func compareNumeric(operator string, lhs, rhs float64) (bool, error) {
	switch operator {
	case OperatorLessThan:
		return lhs < rhs, nil
	case OperatorLessThanEqualTo:
		return lhs <= rhs, nil
	case OperatorGreaterThan:
		return lhs > rhs, nil
	case OperatorGreaterThanEqualTo:
		return lhs >= rhs, nil
	case OperatorEqualTo:
		return lhs == rhs, nil
	case OperatorNotEqualTo:
		return lhs != rhs, nil
	default:
		return false, E(MalformedInput, "", "operator ", operator, " is not valid for a numeric attribute")
	}
}

// compareString evaluates operator against a string attribute value. "in"
// requires value to be a []interface{} of strings; "==" and "!=" require a
// plain string; any other operator, including the numeric comparisons,
// reports MalformedInput. spec.md §9 declines to guess a meaning for "not
// in" — it remains unsupported and reports MalformedInput like any other
// unrecognised operator.
func compareString(operator string, lhs string, value interface{}) (bool, error) {
	switch operator {
	case OperatorEqualTo, OperatorNotEqualTo:
		rhs, ok := value.(string)
		if !ok {
			return false, E(MalformedInput, "", "filter value for a string attribute must be a string")
		}
		if operator == OperatorEqualTo {
			return lhs == rhs, nil
		}
		return lhs != rhs, nil
	case OperatorIn:
		items, ok := value.([]interface{})
		if !ok {
			return false, E(MalformedInput, "", "filter value for operator in must be a list")
		}
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return false, E(MalformedInput, "", "filter value for operator in must be a list of strings")
			}
			if s == lhs {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, E(MalformedInput, "", fmt.Sprintf("operator %s is not valid for a string attribute", operator))
	}
}
