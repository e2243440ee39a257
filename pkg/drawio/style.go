package drawio

import "strings"

// styleProp is one key=value entry of a style string.
type styleProp struct {
	key   string
	value any
}

// Style is an ordered mapping of style properties plus an optional base
// style token (the shape kind, e.g. "rectangle" or "ellipse"). The base
// token is emitted first without a key; entries follow in insertion order.
type Style struct {
	base  string
	props []styleProp
}

// NewStyle creates a style with the given base token. An empty base is
// allowed and simply omitted from the encoded string.
func NewStyle(base string) *Style {
	return &Style{base: base}
}

// Base returns the base style token.
func (s *Style) Base() string {
	return s.base
}

// Set adds or updates a property. Updating an existing key keeps its
// original position. Supported value types are string, bool, int and
// float64; anything else fails at encode time, not here.
func (s *Style) Set(key string, value any) *Style {
	for i := range s.props {
		if s.props[i].key == key {
			s.props[i].value = value
			return s
		}
	}
	s.props = append(s.props, styleProp{key: key, value: value})
	return s
}

// Encode renders the style as the semicolon-joined string the interchange
// format expects. Nil and empty-string values are omitted entirely;
// booleans render as "0"/"1"; numbers use their natural decimal form.
// Values are not escaped here — the attribute embedding the style string
// is escaped as a whole at the point of use.
func (s *Style) Encode() (string, error) {
	var tokens []string
	if s.base != "" {
		tokens = append(tokens, s.base)
	}

	for _, p := range s.props {
		if p.value == nil {
			continue
		}
		var rendered string
		switch v := p.value.(type) {
		case string:
			if v == "" {
				continue
			}
			rendered = v
		case bool:
			if v {
				rendered = "1"
			} else {
				rendered = "0"
			}
		case int:
			rendered = formatInt(v)
		case float64:
			rendered = formatNum(v)
		default:
			return "", &UnsupportedValueError{Key: p.key, Value: p.value}
		}
		tokens = append(tokens, p.key+"="+rendered)
	}

	return strings.Join(tokens, ";"), nil
}
