// Package textutil provides text processing utilities for path sanitization.
//
// Tag values read from audio containers may contain characters that are
// reserved on common filesystems. The sanitizers here turn a raw tag value
// into a string safe to use as a single file or directory name. Two policies
// exist (see ForPolicy); both are total functions and idempotent.
//
// SanitizeToken produces lowercase identifier-style tokens and is used for
// report file names.
package textutil
