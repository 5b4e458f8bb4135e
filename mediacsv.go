// Package mediacsv converts saved HTML media exports into CSV records.
// It locates "added about" captions in the raw export text, recovers the
// video or image URL that sits near each caption, and writes one CSV row
// per recovered item next to the input file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., regexp/, csv/, goquery/, chardet/).
package mediacsv
