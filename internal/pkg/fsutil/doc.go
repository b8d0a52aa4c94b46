// Package fsutil creates date-named directories for generated key material.
package fsutil
