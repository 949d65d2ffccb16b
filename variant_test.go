package vstol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantAddVariantCallSortsByPosition(t *testing.T) {
	v := NewVariant("v1")
	require.NoError(t, v.AddVariantCall(&VariantCall{ID: "b", Chromosome1: "chr1", Position1: 200, Chromosome2: "chr1"}))
	require.NoError(t, v.AddVariantCall(&VariantCall{ID: "a", Chromosome1: "chr1", Position1: 100, Chromosome2: "chr1"}))

	require.Len(t, v.VariantCalls, 2)
	assert.Equal(t, "a", v.VariantCalls[0].ID)
	assert.Equal(t, "b", v.VariantCalls[1].ID)
}

func TestVariantAddVariantCallRejectsChromosomeMismatch(t *testing.T) {
	v := NewVariant("v1")
	require.NoError(t, v.AddVariantCall(&VariantCall{ID: "a", Chromosome1: "chr1", Chromosome2: "chr1"}))
	err := v.AddVariantCall(&VariantCall{ID: "b", Chromosome1: "chr2", Chromosome2: "chr1"})
	require.Error(t, err)
	assert.True(t, IsKind(InternalInvariant, err))
}

func TestVariantMedianEvenAndOdd(t *testing.T) {
	v := NewVariant("v1")
	require.NoError(t, v.AddVariantCall(&VariantCall{ID: "a", Chromosome1: "chr1", Chromosome2: "chr1", QualityScore: 10}))
	require.NoError(t, v.AddVariantCall(&VariantCall{ID: "b", Chromosome1: "chr1", Chromosome2: "chr1", QualityScore: 20}))

	median, err := v.Median("quality_score")
	require.NoError(t, err)
	assert.Equal(t, 15.0, median)

	require.NoError(t, v.AddVariantCall(&VariantCall{ID: "c", Chromosome1: "chr1", Chromosome2: "chr1", QualityScore: 90}))
	median, err = v.Median("quality_score")
	require.NoError(t, err)
	assert.Equal(t, 20.0, median)
}

func TestVariantMinMaxMean(t *testing.T) {
	v := NewVariant("v1")
	require.NoError(t, v.AddVariantCall(&VariantCall{ID: "a", Chromosome1: "chr1", Chromosome2: "chr1", QualityScore: 10}))
	require.NoError(t, v.AddVariantCall(&VariantCall{ID: "b", Chromosome1: "chr1", Chromosome2: "chr1", QualityScore: 30}))

	min, err := v.Min("quality_score")
	require.NoError(t, err)
	assert.Equal(t, 10.0, min)

	max, err := v.Max("quality_score")
	require.NoError(t, err)
	assert.Equal(t, 30.0, max)

	mean, err := v.Mean("quality_score")
	require.NoError(t, err)
	assert.Equal(t, 20.0, mean)
}

func TestVariantAggregateEmptyIsArithmeticUndefined(t *testing.T) {
	v := NewVariant("v1")
	_, err := v.Mean("quality_score")
	require.Error(t, err)
	assert.True(t, IsKind(ArithmeticUndefined, err))
}

func TestVariantNumericValuesRejectsUnknownAttribute(t *testing.T) {
	v := NewVariant("v1")
	require.NoError(t, v.AddVariantCall(&VariantCall{ID: "a", Chromosome1: "chr1", Chromosome2: "chr1"}))
	_, err := v.Mean("not_an_attribute")
	require.Error(t, err)
	assert.True(t, IsKind(MalformedInput, err))
}

func TestVariantCallStripTransientRemovesOrigin(t *testing.T) {
	vc := &VariantCall{ID: "a", transient: &transientOrigin{listIndex: 1, variantID: "v1"}}
	stripped := vc.StripTransient()
	assert.Nil(t, stripped.transient)
	assert.NotNil(t, vc.transient, "StripTransient must not mutate the receiver")
}
