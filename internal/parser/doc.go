// Package parser reads build descriptors (Maven pom.xml, or JSON, YAML and
// TOML documents with the same fields) into coords.Model values, and
// rewrites their version fields in place.
package parser
