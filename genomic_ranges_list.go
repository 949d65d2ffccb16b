package vstol

import "sort"

// GenomicRangesList maps a chromosome to its GenomicRanges, kept sorted by
// Start.
type GenomicRangesList struct {
	ranges map[string][]GenomicRange
}

// NewGenomicRangesList returns an empty GenomicRangesList.
func NewGenomicRangesList() *GenomicRangesList {
	return &GenomicRangesList{ranges: make(map[string][]GenomicRange)}
}

// AddGenomicRange inserts r, keeping its chromosome's ranges sorted by
// Start.
func (l *GenomicRangesList) AddGenomicRange(r GenomicRange) {
	bucket := l.ranges[r.Chromosome]
	idx := sort.Search(len(bucket), func(i int) bool { return bucket[i].Start >= r.Start })
	bucket = append(bucket, GenomicRange{})
	copy(bucket[idx+1:], bucket[idx:])
	bucket[idx] = r
	l.ranges[r.Chromosome] = bucket
}

// FindOverlaps returns every range on chromosome whose closed interval
// overlaps [start, end]. Ranges are sorted by Start, so the scan can stop as
// soon as a candidate's Start exceeds end — the same early-exit shape as
// the sorted-array search in a disjoint interval union, without requiring
// the ranges themselves to be disjoint.
func (l *GenomicRangesList) FindOverlaps(chromosome string, start, end int64) []GenomicRange {
	var overlaps []GenomicRange
	for _, r := range l.ranges[chromosome] {
		if r.Start > end {
			break
		}
		if r.Overlaps(chromosome, start, end) {
			overlaps = append(overlaps, r)
		}
	}
	return overlaps
}

// Chromosomes returns the chromosomes with at least one range.
func (l *GenomicRangesList) Chromosomes() []string {
	chroms := make([]string, 0, len(l.ranges))
	for c := range l.ranges {
		chroms = append(chroms, c)
	}
	return chroms
}

// Clone returns a deep copy of l.
func (l *GenomicRangesList) Clone() *GenomicRangesList {
	clone := NewGenomicRangesList()
	for chrom, ranges := range l.ranges {
		clone.ranges[chrom] = append([]GenomicRange(nil), ranges...)
	}
	return clone
}
