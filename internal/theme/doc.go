// Package theme defines the theme document model: a named bundle of
// editor and terminal color attributes stored as one JSON file per
// theme. It provides strict document parsing, the explicit attribute
// schema enumeration shared by override application and diffing, and
// the embedded default theme used to bootstrap an empty themes
// directory.
package theme
