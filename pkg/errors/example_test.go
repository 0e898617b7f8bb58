// Package errors provides examples of structured error handling in medallion.
package errors_test

import (
	"fmt"
	"io"

	"github.com/ajitpratap0/medallion/pkg/errors"
)

// Example demonstrates basic error creation and details.
func Example() {
	err := errors.New(errors.ErrorTypeSerialization, "record set is empty").
		WithDetail("zone", "gold")

	fmt.Println(err.Error())

	// Output:
	// serialization: record set is empty
}

// ExampleWrap shows how to wrap an upload failure.
func ExampleWrap() {
	err := errors.Wrap(io.ErrUnexpectedEOF, errors.ErrorTypeStorage, "put object").
		WithDetail("bucket", "gold-zone")

	if errors.IsStorage(err) {
		fmt.Println("storage error")
	}
	fmt.Println(err.Error())

	// Output:
	// storage error
	// storage: put object: unexpected EOF
}

// ExampleTypeOf shows how callers classify a failed run.
func ExampleTypeOf() {
	gen := errors.New(errors.ErrorTypeGeneration, "provider has no data for locale")
	wrapped := fmt.Errorf("run landing-sap: %w", gen)

	fmt.Println(errors.TypeOf(wrapped))
	fmt.Println(errors.TypeOf(io.EOF))

	// Output:
	// generation
	// internal
}

// ExampleIsType shows that rewrapping changes the category.
func ExampleIsType() {
	cause := errors.New(errors.ErrorTypeValidation, "count must be positive").
		WithDetail("count", 0)
	err := errors.Wrap(cause, errors.ErrorTypeGeneration, "generate records")

	fmt.Println(errors.IsGeneration(err))
	fmt.Println(errors.IsType(err, errors.ErrorTypeValidation))
	fmt.Println(len(err.Stack) > 0 && err.Stack[0].Line == cause.Stack[0].Line)

	// Output:
	// true
	// false
	// true
}
