// Package addressbook holds module-level metadata for the addressbook
// library and CLI.
package addressbook

// Version is the release version, without the leading "v".
const Version = "0.1.0"

// ModulePath is the Go module path.
const ModulePath = "github.com/mesh-intelligence/addressbook"
