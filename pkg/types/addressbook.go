// AddressBook owns records keyed by name.
package types

import (
	"maps"
	"slices"
)

// AddressBook maps contact names to the records it owns. Adding a record
// under an existing name replaces the previous record.
type AddressBook struct {
	records map[string]*Record
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores r under its name, silently replacing any record that
// already has that name.
func (b *AddressBook) AddRecord(r *Record) {
	b.records[r.Name().String()] = r
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name.
// Returns OutcomeDeleted, or OutcomeNotFound if no such record exists.
func (b *AddressBook) Delete(name string) Outcome {
	if _, ok := b.records[name]; !ok {
		return OutcomeNotFound
	}
	delete(b.records, name)
	return OutcomeDeleted
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Records returns every record ordered by name.
func (b *AddressBook) Records() []*Record {
	names := slices.Sorted(maps.Keys(b.records))
	out := make([]*Record, len(names))
	for i, name := range names {
		out[i] = b.records[name]
	}
	return out
}
