package domain

// Document is the weakly-typed record persisted per entity. Field values are
// whatever the caller submitted; foreign-reference fields are opaque strings
// that are never dereferenced.
type Document map[string]any

// Clone returns a shallow copy so adapters can hand out documents without
// sharing their internal maps.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	copy := make(Document, len(d))
	for k, v := range d {
		copy[k] = v
	}
	return copy
}

// Entry pairs a store-assigned identifier with its document. It is the unit
// returned by list and get-by-id.
type Entry struct {
	ID   string
	Data Document
}
