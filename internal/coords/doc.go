// Package coords parses, validates and formats build coordinates
// (group:artifact:version, "GAV") taken from user input or from build
// descriptors that may inherit their group and version from a parent.
//
// Every function in this package is pure. The only side effect is the
// warning emitted by ParseList for each malformed token, and that goes to
// a caller-supplied Warner.
package coords
