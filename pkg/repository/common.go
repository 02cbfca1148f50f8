package repository

import "strings"

// criticalError marks an error no retry will fix, so the busy-retry loop
// stops immediately instead of burning its remaining attempts
type criticalError struct {
	err error
}

func (e *criticalError) Error() string { return e.err.Error() }

func (e *criticalError) Unwrap() error { return e.err }

// busyMarkers are the transient lock conditions worth retrying; the modernc
// driver reports them as text, e.g. "database is locked (5) (SQLITE_BUSY)"
var busyMarkers = []string{"SQLITE_BUSY", "database is locked", "database table is locked"}

// isLockError reports whether err is a transient sqlite busy/locked condition
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range busyMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
