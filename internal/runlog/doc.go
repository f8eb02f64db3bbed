// Package runlog persists a history of copy_sort runs in SQLite.
//
// Each completed run is stored as one row: identifiers, source and
// destination roots, timing, and outcome counters. The store backs the
// `tagsort history` command and is entirely optional; an empty database
// path disables it.
package runlog
