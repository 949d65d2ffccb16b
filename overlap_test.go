package vstol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlapFindsPaddedHit(t *testing.T) {
	regions := NewGenomicRangesList()
	regions.AddGenomicRange(NewGenomicRange("chr1", 2000, 2100))

	vl := singleVariantList(deletionCall("a", "chr1", 1990, 2500, 510))

	overlaps, err := vl.Overlap(regions, 20, 1)
	require.NoError(t, err)
	require.Contains(t, overlaps, "a")
	assert.Equal(t, []string{"chr1:2000-2100"}, overlaps["a"])
}

func TestOverlapOmitsNonOverlapping(t *testing.T) {
	regions := NewGenomicRangesList()
	regions.AddGenomicRange(NewGenomicRange("chr1", 9000, 9100))

	vl := singleVariantList(deletionCall("a", "chr1", 1000, 2000, 1000))

	overlaps, err := vl.Overlap(regions, 0, 1)
	require.NoError(t, err)
	assert.Empty(t, overlaps)
}

func TestOverlapDeduplicatesAcrossBreakpoints(t *testing.T) {
	regions := NewGenomicRangesList()
	regions.AddGenomicRange(NewGenomicRange("chr1", 900, 2100))

	vl := singleVariantList(deletionCall("a", "chr1", 1000, 2000, 1000))

	overlaps, err := vl.Overlap(regions, 0, 1)
	require.NoError(t, err)
	assert.Len(t, overlaps["a"], 1)
}

// TestOverlapIsPerCallNotPerVariant exercises call-level granularity: a
// Variant with two member calls where only one call overlaps a region must
// report that call's id alone, not the Variant's id and not both calls'.
func TestOverlapIsPerCallNotPerVariant(t *testing.T) {
	regions := NewGenomicRangesList()
	regions.AddGenomicRange(NewGenomicRange("chr1", 2000, 2100))

	v := NewVariant("shared-variant")
	require.NoError(t, v.AddVariantCall(deletionCall("overlapping", "chr1", 2050, 3000, 950)))
	require.NoError(t, v.AddVariantCall(deletionCall("distant", "chr1", 500000, 501000, 1000)))
	vl := NewVariantsList()
	vl.AddVariant(v)

	overlaps, err := vl.Overlap(regions, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"overlapping": {"chr1:2000-2100"}}, overlaps)
	assert.NotContains(t, overlaps, "shared-variant")
	assert.NotContains(t, overlaps, "distant")
}
