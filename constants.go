package vstol

// Variant-type tags, the closed set recognised by VariantCall.VariantType.
const (
	SingleNucleotideVariant = "SNV"
	MultiNucleotideVariant  = "MNV"
	Insertion               = "INS"
	Deletion                = "DEL"
	Inversion               = "INV"
	Duplication             = "DUP"
	Translocation           = "TRA"
	Breakpoint              = "BND"
	// Reference is reserved and is never a valid VariantCall.VariantType.
	Reference = "REF"
)

// Quantifiers recognised by VariantFilter.Quantifier.
const (
	QuantifierAll     = "all"
	QuantifierAny     = "any"
	QuantifierMedian  = "median"
	QuantifierAverage = "average"
	QuantifierMin     = "min"
	QuantifierMax     = "max"
)

// Operators recognised by VariantFilter.Operator.
const (
	OperatorLessThan           = "<"
	OperatorLessThanEqualTo    = "<="
	OperatorGreaterThan        = ">"
	OperatorGreaterThanEqualTo = ">="
	OperatorEqualTo            = "=="
	OperatorNotEqualTo         = "!="
	OperatorIn                 = "in"
)

// variantTypeClass is the process-wide mapping from a variant-type tag to
// its canonical super-type class, used for type-compatibility tests in the
// clustering predicate. INS and DUP share a class, as do INV, TRA, and BND;
// DEL, SNV, and MNV are each their own class.
var variantTypeClass = map[string]string{
	SingleNucleotideVariant: SingleNucleotideVariant,
	MultiNucleotideVariant:  MultiNucleotideVariant,
	Insertion:               Duplication + ";" + Insertion,
	Duplication:             Duplication + ";" + Insertion,
	Deletion:                Deletion,
	Inversion:               Breakpoint + ";" + Inversion + ";" + Translocation,
	Translocation:           Breakpoint + ";" + Inversion + ";" + Translocation,
	Breakpoint:              Breakpoint + ";" + Inversion + ";" + Translocation,
}

// VariantTypeClass returns the canonical super-type class for a variant-type
// tag, and false if the tag is not one of the eight recognised types.
func VariantTypeClass(variantType string) (string, bool) {
	class, ok := variantTypeClass[variantType]
	return class, ok
}

var deletionClass = variantTypeClass[Deletion]
var insertionClass = variantTypeClass[Insertion]

// stringAttributes and numericAttributes partition the VariantCall fields a
// VariantFilter may reference, per spec.md §4.4.
var stringAttributes = map[string]bool{
	"id":                     true,
	"source_id":              true,
	"sample_id":              true,
	"phase_block_id":         true,
	"clone_id":               true,
	"nucleic_acid":           true,
	"variant_calling_method": true,
	"sequencing_platform":    true,
	"precise":                true,
	"chromosome_1":           true,
	"chromosome_2":           true,
	"reference_allele":       true,
	"alternate_allele":       true,
	"filter":                 true,
	"variant_type":           true,
	"variant_subtype":        true,
}

var numericAttributes = map[string]bool{
	"position_1":                  true,
	"position_2":                  true,
	"quality_score":               true,
	"variant_size":                true,
	"total_read_count":            true,
	"reference_allele_read_count": true,
	"alternate_allele_read_count": true,
	"alternate_allele_fraction":   true,
}
