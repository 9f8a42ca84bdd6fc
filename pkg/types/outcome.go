// Operation outcomes for records and the address book.
package types

// Outcome is the non-error result of a mutation or lookup.
type Outcome string

// Outcomes returned by Record and AddressBook operations.
const (
	OutcomeAdded         Outcome = "added"
	OutcomeAlreadyExists Outcome = "already_exists"
	OutcomeRemoved       Outcome = "removed"
	OutcomeEdited        Outcome = "edited"
	OutcomeDeleted       Outcome = "deleted"
	OutcomeNotFound      Outcome = "not_found"
)

// String returns the outcome identifier.
func (o Outcome) String() string {
	return string(o)
}

// Changed reports whether the operation that produced o mutated state.
func (o Outcome) Changed() bool {
	switch o {
	case OutcomeAdded, OutcomeRemoved, OutcomeEdited, OutcomeDeleted:
		return true
	}
	return false
}
