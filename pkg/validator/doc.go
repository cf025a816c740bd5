// Package validator provides the composable rule layer behind option
// validation: small, generic, type-safe Rule values plus combinators that add
// nullability, lower bounds, list fan-out and user-facing error messages.
//
// A Rule[In, Out] is a plain function from an input to a converted output or
// an error. Base rules (ParseInt, ParseFloat, Lookup, OneOf, FileExists,
// DirExists, NotExists, ParseUUID, NotBlank, MinLen, MaxLen, Matches) report
// a bare cause, usually a *Violation wrapping one of the sentinels from
// errors.go. Combinators wrap rules without
// knowing what they check:
//
//   - Describe  – turns any failure into a *ValidationError with a description
//   - Nullable  – nil input bypasses the rule and yields nil
//   - Required  – nil input fails with ErrFieldRequired
//   - AtLeast   – inclusive lower bound for Numeric results
//   - Then      – sequential composition
//   - Each      – split a delimited string and validate every item, fail-fast
//   - Keep / OrOriginal – adapt predicates and optional transforms to rules
//
// # Usage
//
//	workers := validator.Describe("Invalid number of workers",
//	    validator.Nullable(validator.AtLeast(validator.Rule[string, int](validator.ParseInt), 1)),
//	)
//	n, err := workers(rawFlag) // rawFlag is *string; nil means the flag was not given
//
// # Error Handling
//
// ValidationError renders as "<description>: '<value>'." and unwraps to its
// cause, so errors.Is(err, validator.ErrOutOfRange) works through every
// layer. Apply runs several checks and aggregates their failures into
// ValidationErrors. ParseBool is the exception: it returns a *ConversionError,
// which is not a ValidationError.
//
// All rules are stateless and goroutine-safe; maps and slices passed to
// Lookup and OneOf are read, never written.
package validator
