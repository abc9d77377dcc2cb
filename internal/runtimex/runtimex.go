// Package runtimex contains runtime extensions. This package is inspired to
// https://pkg.go.dev/github.com/m-lab/go/rtx, except that it's simpler.
package runtimex

import "fmt"

// PanicOnError calls panic() if err is not nil.
func PanicOnError(err error, message string) {
	if err != nil {
		panic(fmt.Errorf("%s: %w", message, err))
	}
}

// PanicIfFalse calls panic if assertion is false.
func PanicIfFalse(assertion bool, message string) {
	if !assertion {
		panic(message)
	}
}

// Try0 calls [PanicOnError] if err is not nil.
func Try0(err error) {
	PanicOnError(err, "Try0")
}

// Try1 is like [Try0] but also returns the first value on success.
func Try1[T1 any](v1 T1, err error) T1 {
	Try0(err)
	return v1
}
