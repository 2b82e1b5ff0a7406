// Package errs holds the error types shared by the cargo domain and
// application layers.
//
// Every kind follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ...) to match with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error and New...ErrorWithCause constructors
//   - Error() for the message and Unwrap() returning the sentinel
//
// Callers that only care about the category match the sentinel; callers that
// need details use errors.As on the struct.
package errs
