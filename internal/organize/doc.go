// Package organize walks a source tree and sorts audio files into the
// destination library.
//
// Each regular file is classified by extension, run through tag extraction,
// sanitization, and placement, and its outcome accumulated into a Report
// value returned to the caller. Per-file failures never abort the walk; they
// are recorded and, at end of run, written to report files and echoed to the
// console. The walk is single-threaded and lexically ordered, so reports are
// reproducible for a given filesystem snapshot.
package organize
