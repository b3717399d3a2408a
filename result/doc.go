// Package result provides Result, an immutable value that is either a success
// holding exactly one non-nil value or a failure holding one or more *error.Error
// records, never both and never neither.
//
// Results are created with FromValue, FromError or FromErrors and chained with
// Bind, Effect and BindAsync without checking for failure at every step:
//
//	r := result.Bind(result.FromValue(3), strconv.Itoa)
//	task := result.BindAsync(ctx, r, fetchCustomer)
//	customer, err := task.Await(ctx)
//
// Misuse at construction time (a nil success value, an empty error sequence)
// is a programmer error and panics with an ArgumentError. Expected failures
// travel inside the Result. BindAsync additionally captures faults returned
// or raised by its transform as error.FromException values, except faults a
// fatal predicate classifies as unrecoverable, which propagate unmodified.
package result
