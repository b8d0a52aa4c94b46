// Package validators provides custom go-playground/validator rules for algorithm selectors and key sizes.
package validators
