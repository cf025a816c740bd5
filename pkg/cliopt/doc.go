// Package cliopt validates command-line option values.
//
// Each exported function checks one raw option value against a rule, using a
// caller-supplied description to build the error message. On success it
// returns the typed or translated value; on failure it returns a
// *validator.ValidationError whose message has the shape
//
//	<description>: '<original value>'.
//
// ParseBool is the only exception: it returns a *validator.ConversionError.
//
// Modifiers are passed as functional options and apply only where they make
// sense:
//
//   - AllowAbsent  – a nil value passes untouched (ValidateFile, ValidateDir, ValidateInt)
//   - MustNotExist – invert path existence (ValidateFile, ValidateDir)
//   - MinInt / MinFloat – lower bound, inclusive (ValidateInt / ValidateFloat)
//   - WithSeparator – list separator, "," by default (ValidateList, ValidateStrings)
//   - WithProber / WithContext – how paths are probed (ValidateFile, ValidateDir)
//
// Options that do not apply to a validator are ignored.
//
// # Usage
//
//	workers, err := cliopt.ValidateInt(rawWorkers, "Invalid number of workers", cliopt.MinInt(1))
//	if err != nil {
//		fmt.Fprintln(os.Stderr, err) // Invalid number of workers: '0' must be at least 1.
//		os.Exit(1)
//	}
//
//	ids, err := cliopt.ValidateList(rawIDs, strconv.Atoi, "Invalid id")
//
// All functions are stateless and safe for concurrent use, provided caller
// owned tables and sets are not mutated during a call.
package cliopt
