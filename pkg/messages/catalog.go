package messages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/ordutils/pkg/validator"
)

// DefaultLanguage is used when no option overrides it.
const DefaultLanguage = "en"

// Translator is read-only after construction and safe for concurrent use.
type Translator struct {
	translations map[string]map[string]any
	defaultLang  string
	logger       *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when the requested one has no
// catalog section.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = NormalizeLanguage(lang)
		}
	}
}

// WithLogger logs missing translations at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// Parse decodes a catalog document. JSON is accepted as a subset of YAML.
func Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		section, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w %q: expected map, got %T", ErrInvalidLanguage, lang, val)
		}
		result[NormalizeLanguage(lang)] = section
	}
	if len(result) == 0 {
		return nil, ErrEmptyCatalog
	}
	return result, nil
}

// LoadFile reads and parses the catalog at path.
func LoadFile(ctx context.Context, path string, opts ...Option) (*Translator, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	translations, err := Parse(ctx, content)
	if err != nil {
		return nil, err
	}
	return New(translations, opts...), nil
}

// New builds a Translator over already parsed translations.
func New(translations map[string]map[string]any, opts ...Option) *Translator {
	t := &Translator{
		translations: translations,
		defaultLang:  DefaultLanguage,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Languages returns the catalog's languages, sorted.
func (t *Translator) Languages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// T returns the template for key in lang with %{name} placeholders replaced
// from params. Unknown placeholders are left as they are. The second result
// reports whether a template was found in lang or the default language.
func (t *Translator) T(lang, key string, params map[string]any) (string, bool) {
	for _, l := range []string{NormalizeLanguage(lang), t.defaultLang} {
		section, ok := t.translations[l]
		if !ok {
			continue
		}
		if tmpl, ok := lookup(section, key).(string); ok {
			return substitute(tmpl, params), true
		}
	}
	t.logger.Debug("translation not found", slog.String("lang", lang), slog.String("key", key))
	return "", false
}

// Render localizes err when it is (or wraps) a *validator.ValidationError
// with a known translation key, and falls back to err.Error() otherwise.
// ValidationErrors are rendered one entry per line.
func (t *Translator) Render(lang string, err error) string {
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		lines := make([]string, len(verrs))
		for i := range verrs {
			lines[i] = t.Render(lang, &verrs[i])
		}
		return strings.Join(lines, "\n")
	}
	var ve *validator.ValidationError
	if !errors.As(err, &ve) || ve.TranslationKey == "" {
		return err.Error()
	}
	if msg, ok := t.T(lang, ve.TranslationKey, ve.TranslationValues); ok {
		return msg
	}
	return err.Error()
}

// NormalizeLanguage reduces locale strings like "de_DE.UTF-8" or "pt-BR" to
// their base language ("de", "pt"). Unparseable input is lower-cased as is.
func NormalizeLanguage(s string) string {
	s, _, _ = strings.Cut(s, ".")
	s, _, _ = strings.Cut(s, "@")
	s = strings.ReplaceAll(s, "_", "-")
	tag, err := language.Parse(s)
	if err != nil {
		return strings.ToLower(s)
	}
	base, _ := tag.Base()
	return base.String()
}

// lookup traverses nested maps using a dot-separated key.
func lookup(m map[string]any, key string) any {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil
		}
		if i == len(parts)-1 {
			return val
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func substitute(tmpl string, params map[string]any) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
