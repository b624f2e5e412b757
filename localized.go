package cv2pdf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Localized is a text field that is either the same in every language or
// carries one value per language code.
//
// In a data file it is written as a plain string, a list of strings (joined
// with single spaces), or a mapping from language code to text:
//
//	title: Backend Engineer
//	title:
//	  en: Backend Engineer
//	  fr: Ingénieur backend
//
// A mapping value may itself be a list; its entries are joined with
// newlines so each becomes one bullet line.
type Localized struct {
	plain    string
	variants map[string]string
}

// Plain returns a language-invariant field.
func Plain(s string) Localized {
	return Localized{plain: s}
}

// Variants returns a per-language field. The map is copied.
func Variants(m map[string]string) Localized {
	v := make(map[string]string, len(m))
	for k, s := range m {
		v[k] = s
	}
	return Localized{variants: v}
}

// Resolve returns the text for lang. A per-language field without lang
// resolves to "" (there is no fallback language).
func (l Localized) Resolve(lang string) string {
	if l.variants != nil {
		return l.variants[lang]
	}
	return l.plain
}

// IsLocalized reports whether the field carries per-language values.
func (l Localized) IsLocalized() bool {
	return l.variants != nil
}

// Languages returns the language codes of a per-language field, sorted.
func (l Localized) Languages() []string {
	langs := make([]string, 0, len(l.variants))
	for k := range l.variants {
		langs = append(langs, k)
	}
	sort.Strings(langs)
	return langs
}

// UnmarshalYAML implements the goccy/go-yaml InterfaceUnmarshaler.
func (l *Localized) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	return l.fromRaw(raw)
}

// UnmarshalTOML implements toml.Unmarshaler.
func (l *Localized) UnmarshalTOML(raw any) error {
	return l.fromRaw(raw)
}

func (l *Localized) fromRaw(raw any) error {
	switch v := raw.(type) {
	case nil:
		*l = Localized{}
		return nil
	case []any:
		s, err := joinScalars(v, " ")
		if err != nil {
			return err
		}
		*l = Plain(s)
		return nil
	case map[string]any:
		variants := make(map[string]string, len(v))
		for lang, item := range v {
			s, err := variantText(item)
			if err != nil {
				return fmt.Errorf("language %q: %w", lang, err)
			}
			variants[lang] = s
		}
		*l = Localized{variants: variants}
		return nil
	}

	s, err := scalarText(raw)
	if err != nil {
		return err
	}
	*l = Plain(s)
	return nil
}

func variantText(item any) (string, error) {
	if list, ok := item.([]any); ok {
		return joinScalars(list, "\n")
	}
	return scalarText(item)
}

func joinScalars(items []any, sep string) (string, error) {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		s, err := scalarText(item)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, sep), nil
}

// scalarText renders a decoded scalar as text.
func scalarText(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	case bool:
		return strconv.FormatBool(s), nil
	case int:
		return strconv.Itoa(s), nil
	case int64:
		return strconv.FormatInt(s, 10), nil
	case uint64:
		return strconv.FormatUint(s, 10), nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	case time.Time:
		return s.Format(time.DateOnly), nil
	}
	return "", fmt.Errorf("%w: got %T", ErrNotScalar, v)
}

// Scalar holds a year-like value such as 2021 or "2021-03". Null and
// absent values are empty.
type Scalar string

// String returns the value as written.
func (s Scalar) String() string {
	return string(s)
}

// UnmarshalYAML implements the goccy/go-yaml InterfaceUnmarshaler.
func (s *Scalar) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	return s.fromRaw(raw)
}

// UnmarshalTOML implements toml.Unmarshaler.
func (s *Scalar) UnmarshalTOML(raw any) error {
	return s.fromRaw(raw)
}

func (s *Scalar) fromRaw(raw any) error {
	text, err := scalarText(raw)
	if err != nil {
		return err
	}
	*s = Scalar(text)
	return nil
}
