package vstol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callWithQuality(id string, quality float64, sampleID string) *VariantCall {
	return &VariantCall{ID: id, SampleID: sampleID, Chromosome1: "chr1", Chromosome2: "chr1", VariantType: Deletion, QualityScore: quality}
}

func TestFilterAllQuantifier(t *testing.T) {
	v := NewVariant("v1")
	require.NoError(t, v.AddVariantCall(callWithQuality("a", 40, "s1")))
	require.NoError(t, v.AddVariantCall(callWithQuality("b", 50, "s2")))

	f := VariantFilter{Quantifier: QuantifierAll, Attribute: "quality_score", Operator: OperatorGreaterThanEqualTo, Value: float64(30)}
	keep, err := f.keep(v)
	require.NoError(t, err)
	assert.True(t, keep)

	f.Value = float64(45)
	keep, err = f.keep(v)
	require.NoError(t, err)
	assert.False(t, keep, "one call has quality 40 < 45")
}

func TestFilterAnyQuantifier(t *testing.T) {
	v := NewVariant("v1")
	require.NoError(t, v.AddVariantCall(callWithQuality("a", 10, "s1")))
	require.NoError(t, v.AddVariantCall(callWithQuality("b", 90, "s2")))

	f := VariantFilter{Quantifier: QuantifierAny, Attribute: "quality_score", Operator: OperatorGreaterThanEqualTo, Value: float64(50)}
	keep, err := f.keep(v)
	require.NoError(t, err)
	assert.True(t, keep)
}

func TestFilterAggregateMedian(t *testing.T) {
	v := NewVariant("v1")
	require.NoError(t, v.AddVariantCall(callWithQuality("a", 10, "s1")))
	require.NoError(t, v.AddVariantCall(callWithQuality("b", 20, "s2")))
	require.NoError(t, v.AddVariantCall(callWithQuality("c", 90, "s3")))

	f := VariantFilter{Quantifier: QuantifierMedian, Attribute: "quality_score", Operator: OperatorEqualTo, Value: float64(20)}
	keep, err := f.keep(v)
	require.NoError(t, err)
	assert.True(t, keep)
}

func TestFilterSampleIDRestriction(t *testing.T) {
	v := NewVariant("v1")
	require.NoError(t, v.AddVariantCall(callWithQuality("a", 5, "s1")))
	require.NoError(t, v.AddVariantCall(callWithQuality("b", 95, "s2")))

	f := VariantFilter{Quantifier: QuantifierAll, Attribute: "quality_score", Operator: OperatorGreaterThanEqualTo, Value: float64(90), SampleIDs: []string{"s2"}}
	keep, err := f.keep(v)
	require.NoError(t, err)
	assert.True(t, keep, "restricting to s2 excludes the low-quality s1 call")
}

// TestFilterEmptyScopeQuantifiers covers an in-scope call set left empty by
// SampleIDs matching none of the Variant's members: all is vacuously true,
// any is false, and the aggregate quantifiers have no value to reduce.
func TestFilterEmptyScopeQuantifiers(t *testing.T) {
	v := NewVariant("v1")
	require.NoError(t, v.AddVariantCall(callWithQuality("a", 10, "s1")))

	all := VariantFilter{Quantifier: QuantifierAll, Attribute: "quality_score", Operator: OperatorGreaterThanEqualTo, Value: float64(1000), SampleIDs: []string{"no-such-sample"}}
	keep, err := all.keep(v)
	require.NoError(t, err)
	assert.True(t, keep, "all is vacuously satisfied over an empty scope")

	any := VariantFilter{Quantifier: QuantifierAny, Attribute: "quality_score", Operator: OperatorGreaterThanEqualTo, Value: float64(0), SampleIDs: []string{"no-such-sample"}}
	keep, err = any.keep(v)
	require.NoError(t, err)
	assert.False(t, keep, "any has no in-scope call that could ever satisfy it")

	avg := VariantFilter{Quantifier: QuantifierAverage, Attribute: "quality_score", Operator: OperatorGreaterThanEqualTo, Value: float64(0), SampleIDs: []string{"no-such-sample"}}
	_, err = avg.keep(v)
	require.Error(t, err)
	assert.True(t, IsKind(ArithmeticUndefined, err))
}

func TestFilterStringInOperator(t *testing.T) {
	v := NewVariant("v1")
	vc := callWithQuality("a", 10, "s1")
	vc.Chromosome1 = "chr2"
	require.NoError(t, v.AddVariantCall(vc))

	f := VariantFilter{Quantifier: QuantifierAny, Attribute: "chromosome_1", Operator: OperatorIn, Value: []interface{}{"chr1", "chr2"}}
	keep, err := f.keep(v)
	require.NoError(t, err)
	assert.True(t, keep)
}

func TestFilterUnrecognisedOperatorOnString(t *testing.T) {
	v := NewVariant("v1")
	require.NoError(t, v.AddVariantCall(callWithQuality("a", 10, "s1")))

	f := VariantFilter{Quantifier: QuantifierAny, Attribute: "chromosome_1", Operator: OperatorGreaterThan, Value: "chr0"}
	_, err := f.keep(v)
	require.Error(t, err)
	assert.True(t, IsKind(MalformedInput, err))
}

func TestVariantsListFilterDropsNonMatching(t *testing.T) {
	vl := NewVariantsList()
	keepVariant := NewVariant("keep")
	require.NoError(t, keepVariant.AddVariantCall(callWithQuality("a", 99, "s1")))
	dropVariant := NewVariant("drop")
	require.NoError(t, dropVariant.AddVariantCall(callWithQuality("b", 1, "s1")))
	vl.AddVariant(keepVariant)
	vl.AddVariant(dropVariant)

	filtered, err := vl.Filter([]VariantFilter{{
		Quantifier: QuantifierAll, Attribute: "quality_score", Operator: OperatorGreaterThanEqualTo, Value: float64(50),
	}}, 2)
	require.NoError(t, err)
	require.Len(t, filtered.Variants, 1)
	assert.Equal(t, "keep", filtered.Variants[0].ID)
}
