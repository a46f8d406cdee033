// Package errs provides the typed errors shared by the order desk domain,
// application and adapter layers.
//
// Every error type follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrInvalidTransition, ...) usable with errors.Is
//   - a struct carrying the details of the failure
//   - constructors with and without a cause
//   - Error() for the message and Unwrap() exposing the sentinel and the cause
//
// The sentinels map onto the failure classes the API reports:
//   - invalid input: ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange
//   - illegal status move: ErrInvalidTransition
//   - missing entity: ErrObjectNotFound
//   - persistence failure: ErrStoreFailure
package errs
