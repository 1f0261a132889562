package feed

// Variant names one of the two tick feeds published for every
// instrument. The execution feed carries the spreads actually applied to
// orders; the reference feed carries the quoted mid-market spreads.
type Variant string

const (
	// VariantExecution is the feed with execution spreads.
	VariantExecution Variant = "execution"
	// VariantReference is the feed with reference spreads.
	VariantReference Variant = "reference"
)

// Variants returns both feed variants, execution first. The order is the
// ingest order of an update cycle.
func Variants() []Variant {
	return []Variant{VariantExecution, VariantReference}
}

// Valid reports whether v names a known feed.
func (v Variant) Valid() bool {
	return v == VariantExecution || v == VariantReference
}

func (v Variant) String() string {
	return string(v)
}
