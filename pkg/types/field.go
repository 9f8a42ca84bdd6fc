// Validated value fields for contacts.
package types

import "github.com/go-playground/validator/v10"

// Validation tags. phoneTag is registered as an alias so the digit and
// length rules are declared in one place.
const (
	nameTag   = "required"
	phoneTag  = "phone"
	phoneRule = "number,len=10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterAlias(phoneTag, phoneRule)
}

// Field is a validated scalar value with a canonical textual form.
type Field interface {
	String() string
}

// Name is a non-empty contact name. The zero value is not a valid Name;
// use NewName.
type Name struct {
	value string
}

// NewName validates s and returns it as a Name.
// Returns a *ValidationError wrapping ErrEmptyName if s is empty.
func NewName(s string) (Name, error) {
	if err := validate.Var(s, nameTag); err != nil {
		return Name{}, &ValidationError{Field: "name", Value: s, Kind: ErrEmptyName}
	}
	return Name{value: s}, nil
}

// String returns the name as given.
func (n Name) String() string {
	return n.value
}

// Phone is a phone number of exactly ten ASCII digits. Phones compare
// equal with == when their digits match.
type Phone struct {
	value string
}

// NewPhone validates s and returns it as a Phone.
// Returns a *ValidationError wrapping ErrInvalidPhoneFormat unless s is
// exactly ten characters, all of them 0-9.
func NewPhone(s string) (Phone, error) {
	if err := validate.Var(s, phoneTag); err != nil {
		return Phone{}, &ValidationError{Field: "phone", Value: s, Kind: ErrInvalidPhoneFormat}
	}
	return Phone{value: s}, nil
}

// String returns the ten digits.
func (p Phone) String() string {
	return p.value
}

// MarshalText implements encoding.TextMarshaler so phones render as
// plain strings in JSON and YAML output.
func (p Phone) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}

var (
	_ Field = Name{}
	_ Field = Phone{}
)
