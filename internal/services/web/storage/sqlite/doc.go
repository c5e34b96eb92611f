// Package sqlite provides the web cache persistence adapter backed by SQLite.
//
// The store only holds derived cache state that can be rebuilt from the
// campaign API at any time.
package sqlite
