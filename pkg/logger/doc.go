// Package logger provides a thin wrapper around Go's slog package with
// functional options for configuration and helper attribute constructors.
//
// A single factory, New, creates a *slog.Logger configured by Option
// functions. These options allow you to:
//
//   • Select an output format (text or json)
//   • Set the minimum log level
//   • Redirect output (stderr by default, keeping stdout for results)
//   • Supply default slog.Attr values applied to every record
//
// ParseLevel and ParseFormat turn user-supplied strings (for example from
// environment configuration) into option values.
//
// Helper constructors such as OptionName, Value, Rule and Error live in attr.go
// and return commonly-used slog.Attr instances to keep attribute naming
// consistent across commands.
//
// # Usage
//
//	import "github.com/dmitrymomot/ordutils/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithLevel(slog.LevelDebug),
//	        logger.WithAttr(logger.Component("ordutils")),
//	    )
//
//	    log.Error("invalid option",
//	        logger.OptionName("workers"),
//	        logger.Value(raw),
//	        logger.Error(err),
//	    )
//	}
//
// # Error Handling
//
// Helper functions Error and Errors produce attributes only when the supplied
// error value is non-nil allowing calls like:
//
//	log.Info("validated", logger.Error(err))
//
// without an additional nil check. WithFormat panics on unknown formats so
// misconfiguration surfaces at startup.
package logger
