// Package liberr defines the error kinds shared by the cryptographic processors.
//
// Every error returned by a processor satisfies LibError, so callers can branch
// on KindName or on errors.Is against the package sentinels without asserting
// concrete types.
package liberr
