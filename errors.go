package iro

import "errors"

// Sentinel errors for the failure classes of a run. Color-pipeline errors
// (ErrImageDecode, ErrConfig) abort the run; patch-stage errors are isolated to
// the target they occurred on.
var (
	// ErrImageDecode indicates a corrupt, empty, or unsupported image.
	ErrImageDecode = errors.New("image decode error")

	// ErrConfig indicates an invalid option: unknown style or mode, malformed
	// custom hex, out-of-range threshold or color count.
	ErrConfig = errors.New("config error")

	// ErrFileAccess indicates a target file or its directory is missing or
	// unreadable. The target is skipped.
	ErrFileAccess = errors.New("file access error")

	// ErrWrite indicates the atomic replace of a target failed. The original
	// file is left intact.
	ErrWrite = errors.New("write error")

	// ErrMalformedSection indicates a target file contains a broken or
	// duplicated managed section that cannot be safely replaced.
	ErrMalformedSection = errors.New("malformed managed section")

	// ErrTemplateNotFound indicates no user or built-in template exists for a target.
	ErrTemplateNotFound = errors.New("template not found")
)
