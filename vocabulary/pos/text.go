package pos

import "fmt"

// MarshalText encodes the tag as its canonical string. Used by encoding/json
// and gopkg.in/yaml.v3.
func (t Tag) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("marshal %s: not a POS tag", t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a canonical string. The NotSet placeholder is
// rejected like any other unknown string.
func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
