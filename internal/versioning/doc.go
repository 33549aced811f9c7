// Package versioning captures the user's version-manipulation directives
// and the per-module version changes computed from them.
//
// A Config is built once per session from resolved user properties. Its
// directive fields never change afterwards; the versioning-change map is
// set once by the planner and read by whatever rewrites the descriptors.
package versioning
