// Package types defines the contact directory entities: the validated Name
// and Phone fields, the Record that groups phones under a name, the
// AddressBook that owns records by name, and the Outcome values and
// validation errors returned by their operations.
//
// Lookup misses are ordinary return values (OutcomeNotFound or a false
// comma-ok result). Only malformed input is reported through an error.
//
// None of the types are safe for concurrent use.
package types
