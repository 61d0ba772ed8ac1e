//go:build !cgo

package store

// isSQLiteUniqueViolation always reports false without cgo: go-sqlite3 is a
// stub driver in that build and cannot produce constraint errors
func isSQLiteUniqueViolation(err error) bool {
	return false
}
