// Package messages renders validation errors from translation catalogs.
//
// A catalog is a YAML (or JSON) document keyed by language, with nested maps
// addressed by dot-separated keys such as "validation.min". Templates use
// %{name} placeholders which are filled from a ValidationError's
// TranslationValues:
//
//	en:
//	  validation:
//	    min: "%{description}: '%{value}' must be at least %{min}."
//	de:
//	  validation:
//	    min: "%{description}: '%{value}' muss mindestens %{min} sein."
//
// Usage:
//
//	tr, err := messages.LoadFile(ctx, "messages.yaml", messages.WithDefaultLanguage("en"))
//	if err != nil {
//		// Handle error
//	}
//	fmt.Fprintln(os.Stderr, tr.Render(os.Getenv("LANG"), err))
//
// Errors without a translation fall back to their Error() text.
package messages
