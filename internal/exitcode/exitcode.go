// Package exitcode defines process exit codes for the metacurate CLI.
package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	DBConnError     = 3
	CopyError       = 4
	CurateError     = 5
)
