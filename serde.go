package unicase

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"unicode/utf8"
	"unsafe"

	"gopkg.in/yaml.v3"
)

// The encoders below always emit the original, unfolded text and the
// decoders always construct values with NewAscii or New. Errors returned by
// the underlying decoder are passed through unchanged.

// fromBytes returns a T holding a copy of b.
func fromBytes[T Text](b []byte) T {
	return T(string(b))
}

////////////////////////////////////////////////////////////////////////////////
// Ascii

// MarshalText implements encoding.TextMarshaler.
func (a Ascii[T]) MarshalText() ([]byte, error) {
	return append([]byte(nil), a.s...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is copied.
func (a *Ascii[T]) UnmarshalText(text []byte) error {
	*a = NewAscii(fromBytes[T](text))
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a Ascii[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a.s))
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null is a no-op.
func (a *Ascii[T]) UnmarshalJSON(data []byte) error {
	s, ok, err := decodeJSONString(data)
	if err != nil || !ok {
		return err
	}
	*a = NewAscii(T(s))
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a Ascii[T]) MarshalYAML() (any, error) {
	return string(a.s), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Ascii[T]) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*a = NewAscii(T(s))
	return nil
}

// Value implements driver.Valuer.
func (a Ascii[T]) Value() (driver.Value, error) {
	return string(a.s), nil
}

// Scan implements sql.Scanner. Byte slices are copied.
func (a *Ascii[T]) Scan(src any) error {
	s, err := scanString(src, a)
	if err != nil {
		return err
	}
	*a = NewAscii(T(s))
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// UniCase

// MarshalText implements encoding.TextMarshaler.
func (u UniCase[T]) MarshalText() ([]byte, error) {
	return append([]byte(nil), u.Unwrap()...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is copied.
func (u *UniCase[T]) UnmarshalText(text []byte) error {
	*u = New(fromBytes[T](text))
	return nil
}

// MarshalJSON implements json.Marshaler.
func (u UniCase[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(u.Unwrap()))
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null is a no-op.
func (u *UniCase[T]) UnmarshalJSON(data []byte) error {
	s, ok, err := decodeJSONString(data)
	if err != nil || !ok {
		return err
	}
	*u = New(T(s))
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (u UniCase[T]) MarshalYAML() (any, error) {
	return string(u.Unwrap()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (u *UniCase[T]) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*u = New(T(s))
	return nil
}

// Value implements driver.Valuer.
func (u UniCase[T]) Value() (driver.Value, error) {
	return string(u.Unwrap()), nil
}

// Scan implements sql.Scanner. Byte slices are copied.
func (u *UniCase[T]) Scan(src any) error {
	s, err := scanString(src, u)
	if err != nil {
		return err
	}
	*u = New(T(s))
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// Borrowed values

// BorrowBytes returns a UniCase whose text is a view of b. No copy is made,
// so b must not be modified while the returned value is in use.
func BorrowBytes(b []byte) UniCase[string] {
	return New(borrow(b))
}

// BorrowAsciiBytes returns an Ascii whose text is a view of b. No copy is
// made, so b must not be modified while the returned value is in use.
func BorrowAsciiBytes(b []byte) Ascii[string] {
	return NewAscii(borrow(b))
}

// BorrowJSON decodes the JSON string in data. If the string contains no
// escape sequences the returned value is a view of data and no copy is made,
// so data must not be modified while the returned value is in use.
func BorrowJSON(data []byte) (UniCase[string], error) {
	s, err := borrowJSONString(data)
	if err != nil {
		return UniCase[string]{}, err
	}
	return New(s), nil
}

// BorrowJSONAscii is like BorrowJSON but returns an Ascii.
func BorrowJSONAscii(data []byte) (Ascii[string], error) {
	s, err := borrowJSONString(data)
	if err != nil {
		return Ascii[string]{}, err
	}
	return NewAscii(s), nil
}

func borrow(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// jsonSpace is the whitespace allowed around a JSON value.
const jsonSpace = " \t\r\n"

func borrowJSONString(data []byte) (string, error) {
	b := bytes.Trim(data, jsonSpace)
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		if inner := b[1 : len(b)-1]; isPlainJSON(inner) {
			return borrow(inner), nil
		}
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	return s, nil
}

// isPlainJSON reports whether b is the content of a JSON string that
// decodes to itself: valid UTF-8 without quotes, escapes or control
// characters.
func isPlainJSON(b []byte) bool {
	for i := 0; i < len(b); i++ {
		if c := b[i]; c < ' ' || c == '"' || c == '\\' {
			return false
		}
	}
	return utf8.Valid(b)
}

func decodeJSONString(data []byte) (s string, ok bool, err error) {
	if string(bytes.Trim(data, jsonSpace)) == "null" {
		return "", false, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return "", false, err
	}
	return s, true, nil
}

func scanString(src, dst any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return "", fmt.Errorf("unicase: cannot scan %T into %T", src, dst)
}
