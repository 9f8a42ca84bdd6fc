// Record groups the phones of one contact under a name.
package types

import (
	"fmt"
	"slices"
	"strings"
)

// Record is one contact: a Name and an ordered list of distinct Phones.
// Phones keep the order in which they were added.
type Record struct {
	name   Name
	phones []Phone
}

// NewRecord creates a record with no phones.
// Returns a *ValidationError wrapping ErrEmptyName if name is empty.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the record's name.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the phones in insertion order.
func (r *Record) Phones() []Phone {
	return slices.Clone(r.phones)
}

// AddPhone validates raw and appends it.
// Returns OutcomeAlreadyExists without mutating if an equal phone is
// already present, and a *ValidationError if raw is not a valid phone.
func (r *Record) AddPhone(raw string) (Outcome, error) {
	p, err := NewPhone(raw)
	if err != nil {
		return "", err
	}
	if slices.Contains(r.phones, p) {
		return OutcomeAlreadyExists, nil
	}
	r.phones = append(r.phones, p)
	return OutcomeAdded, nil
}

// RemovePhone removes the first phone whose value equals raw. raw is
// compared as given and never validated.
func (r *Record) RemovePhone(raw string) Outcome {
	i := r.indexOf(raw)
	if i < 0 {
		return OutcomeNotFound
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return OutcomeRemoved
}

// EditPhone replaces oldRaw with newRaw, keeping the position of the
// replaced phone.
//
// If oldRaw is absent the record is untouched and OutcomeNotFound is
// returned. If newRaw is invalid the record is untouched and the
// *ValidationError is returned. If newRaw equals another phone already on
// the record, oldRaw is still removed and OutcomeAlreadyExists is returned.
func (r *Record) EditPhone(oldRaw, newRaw string) (Outcome, error) {
	i := r.indexOf(oldRaw)
	if i < 0 {
		return OutcomeNotFound, nil
	}
	p, err := NewPhone(newRaw)
	if err != nil {
		return "", err
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	if slices.Contains(r.phones, p) {
		return OutcomeAlreadyExists, nil
	}
	r.phones = slices.Insert(r.phones, i, p)
	return OutcomeEdited, nil
}

// FindPhone returns the stored phone equal to raw.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	i := r.indexOf(raw)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// String renders the record as "Contact name: <name>, phones: <p1>, <p2>".
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(phones, ", "))
}

func (r *Record) indexOf(raw string) int {
	return slices.IndexFunc(r.phones, func(p Phone) bool {
		return p.value == raw
	})
}
