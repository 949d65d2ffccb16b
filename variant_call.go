package vstol

// VariantCall is one caller's observation of one structural-variant event.
// Position fields are signed to allow safe distance arithmetic across the
// full genome; VariantSize is -1 when not applicable.
type VariantCall struct {
	ID         string `json:"id"`
	SampleID   string `json:"sample_id"`
	Chromosome1 string `json:"chromosome_1"`
	Position1   int64  `json:"position_1"`
	Chromosome2 string `json:"chromosome_2"`
	Position2   int64  `json:"position_2"`
	VariantType string `json:"variant_type"`

	ReferenceAllele string `json:"reference_allele"`
	AlternateAllele string `json:"alternate_allele"`

	SourceID             string `json:"source_id"`
	PhaseBlockID         string `json:"phase_block_id"`
	CloneID              string `json:"clone_id"`
	NucleicAcid          string `json:"nucleic_acid"`
	VariantCallingMethod string `json:"variant_calling_method"`
	SequencingPlatform   string `json:"sequencing_platform"`
	Filter               string `json:"filter"`

	QualityScore   float64 `json:"quality_score"`
	Precise        string  `json:"precise"`
	VariantSubtype string  `json:"variant_subtype"`
	VariantSize    int64   `json:"variant_size"`

	ReferenceAlleleReadCount int64   `json:"reference_allele_read_count"`
	AlternateAlleleReadCount int64   `json:"alternate_allele_read_count"`
	TotalReadCount           int64   `json:"total_read_count"`
	AlternateAlleleFraction  float64 `json:"alternate_allele_fraction"`

	AlternateAlleleReadIDs []string `json:"alternate_allele_read_ids"`
	VariantSequences       []string `json:"variant_sequences"`

	Position1AverageAlignmentScore float64 `json:"position_1_average_alignment_score"`
	Position2AverageAlignmentScore float64 `json:"position_2_average_alignment_score"`

	Attributes map[string]string `json:"attributes"`
	Tags       []string          `json:"tags"`

	Position1Annotations []VariantCallAnnotation `json:"position_1_annotations"`
	Position2Annotations []VariantCallAnnotation `json:"position_2_annotations"`

	// transient holds the per-invocation internal list index and originating
	// Variant id attached by the proximity clusterer (spec.md §3, §9). It is
	// never copied from caller input, never serialised, and is stripped
	// before a VariantCall is returned from any public operation.
	transient *transientOrigin
}

// transientOrigin preserves pre-existing grouping across re-clustering: two
// calls from the same input list that were already in the same Variant
// always cluster (spec.md §4.2, same-origin pass).
type transientOrigin struct {
	listIndex int
	variantID string
}

// AddAttribute sets an attribute, creating the map if necessary.
func (vc *VariantCall) AddAttribute(key, value string) {
	if vc.Attributes == nil {
		vc.Attributes = make(map[string]string)
	}
	vc.Attributes[key] = value
}

// AddTag appends a free-form tag.
func (vc *VariantCall) AddTag(tag string) {
	vc.Tags = append(vc.Tags, tag)
}

// AddAlternateAlleleReadID appends a supporting read id.
func (vc *VariantCall) AddAlternateAlleleReadID(id string) {
	vc.AlternateAlleleReadIDs = append(vc.AlternateAlleleReadIDs, id)
}

// AddVariantSequence appends a variant sequence.
func (vc *VariantCall) AddVariantSequence(seq string) {
	vc.VariantSequences = append(vc.VariantSequences, seq)
}

// AddPosition1Annotation appends an annotation for the first breakpoint.
func (vc *VariantCall) AddPosition1Annotation(a VariantCallAnnotation) {
	vc.Position1Annotations = append(vc.Position1Annotations, a)
}

// AddPosition2Annotation appends an annotation for the second breakpoint.
func (vc *VariantCall) AddPosition2Annotation(a VariantCallAnnotation) {
	vc.Position2Annotations = append(vc.Position2Annotations, a)
}

// Clone returns a deep copy of vc. The transient origin, if any, is carried
// along so Clone can be used freely inside the clusterer; StripTransient
// removes it before a call crosses back out to a caller.
func (vc *VariantCall) Clone() *VariantCall {
	clone := *vc
	if vc.Attributes != nil {
		clone.Attributes = make(map[string]string, len(vc.Attributes))
		for k, v := range vc.Attributes {
			clone.Attributes[k] = v
		}
	}
	clone.AlternateAlleleReadIDs = append([]string(nil), vc.AlternateAlleleReadIDs...)
	clone.VariantSequences = append([]string(nil), vc.VariantSequences...)
	clone.Tags = append([]string(nil), vc.Tags...)
	clone.Position1Annotations = append([]VariantCallAnnotation(nil), vc.Position1Annotations...)
	clone.Position2Annotations = append([]VariantCallAnnotation(nil), vc.Position2Annotations...)
	if vc.transient != nil {
		origin := *vc.transient
		clone.transient = &origin
	}
	return &clone
}

// StripTransient returns a copy of vc with the internal-only clustering
// attributes removed, per spec.md §3 ("these transient attributes ... must
// not leak to outputs").
func (vc *VariantCall) StripTransient() *VariantCall {
	clone := vc.Clone()
	clone.transient = nil
	return clone
}

// numericAttribute returns the value of a numeric attribute by name, and
// false if the name is not one of the recognised numeric attributes (used by
// Variant's aggregate quantifiers).
func (vc *VariantCall) numericAttribute(name string) (float64, bool) {
	switch name {
	case "position_1":
		return float64(vc.Position1), true
	case "position_2":
		return float64(vc.Position2), true
	case "quality_score":
		return vc.QualityScore, true
	case "variant_size":
		return float64(vc.VariantSize), true
	case "total_read_count":
		return float64(vc.TotalReadCount), true
	case "reference_allele_read_count":
		return float64(vc.ReferenceAlleleReadCount), true
	case "alternate_allele_read_count":
		return float64(vc.AlternateAlleleReadCount), true
	case "alternate_allele_fraction":
		return vc.AlternateAlleleFraction, true
	default:
		return 0, false
	}
}

// stringAttribute returns the value of a string attribute by name, and false
// if the name is not one of the recognised string attributes.
func (vc *VariantCall) stringAttribute(name string) (string, bool) {
	switch name {
	case "id":
		return vc.ID, true
	case "source_id":
		return vc.SourceID, true
	case "sample_id":
		return vc.SampleID, true
	case "phase_block_id":
		return vc.PhaseBlockID, true
	case "clone_id":
		return vc.CloneID, true
	case "nucleic_acid":
		return vc.NucleicAcid, true
	case "variant_calling_method":
		return vc.VariantCallingMethod, true
	case "sequencing_platform":
		return vc.SequencingPlatform, true
	case "precise":
		return vc.Precise, true
	case "chromosome_1":
		return vc.Chromosome1, true
	case "chromosome_2":
		return vc.Chromosome2, true
	case "reference_allele":
		return vc.ReferenceAllele, true
	case "alternate_allele":
		return vc.AlternateAllele, true
	case "filter":
		return vc.Filter, true
	case "variant_type":
		return vc.VariantType, true
	case "variant_subtype":
		return vc.VariantSubtype, true
	default:
		return "", false
	}
}
