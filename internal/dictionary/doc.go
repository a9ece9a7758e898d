// Package dictionary matches wildcard patterns against a word list and
// loads word lists from files or over HTTP.
package dictionary
