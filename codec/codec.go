// Package codec adapts the unicase wrappers to encoders that do not use the
// standard encoding interfaces.
package codec

import (
	"encoding"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/charlievieth/unicase"
)

// wrapper is implemented by unicase.Ascii and unicase.UniCase.
type wrapper interface {
	encoding.TextMarshaler
	IsASCII() bool
	Len() int
}

var (
	wrapperType         = reflect.TypeOf((*wrapper)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// DecodeHook returns a mapstructure decode hook that converts string input
// into unicase.Ascii and unicase.UniCase fields. Other conversions are left
// to mapstructure.
func DecodeHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		if !to.Implements(wrapperType) || !reflect.PointerTo(to).Implements(textUnmarshalerType) {
			return data, nil
		}
		v := reflect.New(to)
		s := reflect.ValueOf(data).String()
		if err := v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return nil, err
		}
		return v.Elem().Interface(), nil
	}
}

// Decode decodes input into output, which must be a pointer, using
// DecodeHook for unicase fields.
func Decode(input, output any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: DecodeHook(),
		Result:     output,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// StringValue returns the original text of u as a protobuf StringValue.
func StringValue[T unicase.Text](u unicase.UniCase[T]) *wrapperspb.StringValue {
	return wrapperspb.String(u.String())
}

// AsciiStringValue returns the original text of a as a protobuf StringValue.
func AsciiStringValue[T unicase.Text](a unicase.Ascii[T]) *wrapperspb.StringValue {
	return wrapperspb.String(a.String())
}

// FromStringValue returns the text of v wrapped in a UniCase. A nil v is
// treated as the empty string.
func FromStringValue[T unicase.Text](v *wrapperspb.StringValue) unicase.UniCase[T] {
	return unicase.New(T(v.GetValue()))
}

// AsciiFromStringValue returns the text of v wrapped in an Ascii. A nil v is
// treated as the empty string.
func AsciiFromStringValue[T unicase.Text](v *wrapperspb.StringValue) unicase.Ascii[T] {
	return unicase.NewAscii(T(v.GetValue()))
}
