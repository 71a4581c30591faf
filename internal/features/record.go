package features

// Record is a flat, insertion-ordered mapping of feature name to numeric
// value. It is the single-request counterpart of a dataset column: a feature
// is either present with a value or absent entirely, and once set it is never
// overwritten, so re-deriving features over an enriched record is a no-op.
type Record struct {
	names  []string
	values map[string]float64
}

// NewRecord creates an empty feature record.
func NewRecord() *Record {
	return &Record{values: make(map[string]float64)}
}

// Set adds a feature value. Existing features are never overwritten.
func (r *Record) Set(name string, value float64) {
	if _, ok := r.values[name]; ok {
		return
	}
	r.names = append(r.names, name)
	r.values[name] = value
}

// Get returns a feature value and whether it is present.
func (r *Record) Get(name string) (float64, bool) {
	v, ok := r.values[name]
	return v, ok
}

// GetOr returns a feature value, or the fallback when the feature is absent.
func (r *Record) GetOr(name string, fallback float64) float64 {
	if v, ok := r.values[name]; ok {
		return v
	}
	return fallback
}

// Has reports whether the feature is present.
func (r *Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Names returns the feature names in insertion order.
func (r *Record) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of features in the record.
func (r *Record) Len() int {
	return len(r.names)
}
