// Package internalcheck holds static policy tests over this module's source.
//
// The tests load the wrapper and provider packages with go/packages and fail
// on constructs that leak or mishandle key material: variable-time byte
// comparison, hex verbs or raw byte arguments in format and log calls, and
// cgo outside internal/cgo. It has no non-test code.
package internalcheck
