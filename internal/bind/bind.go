// Package bind maps tagged struct fields onto attribute values.
//
// Fields carry an `aria` tag naming an attribute in the closed
// vocabulary. Shredding writes tagged fields through the codec;
// assembling populates them from it.
package bind

import (
	"reflect"
	"strings"

	"github.com/webaccess/aria/internal/codec"
	. "github.com/webaccess/aria/internal/types"
)

// fieldTag is a partial representation of an attribute binding and hints
// on how it is realized on a struct field.
type fieldTag struct {
	name      string
	keepEmpty bool
}

func parseFieldTag(tag string) (ft fieldTag, err error) {
	parts := strings.Split(tag, ",")
	ft.name = strings.ToLower(parts[0])
	for _, part := range parts[1:] {
		switch part {
		case "keepempty":
			ft.keepEmpty = true
		default:
			err = NewError(ErrInvalidValue, "bind.invalidDirective", "tag", tag)
			return
		}
	}
	return
}

// Shred writes each tagged field of the struct x through the codec.
// Zero-valued fields and nil pointers are skipped unless the tag carries
// the keepempty directive. The attribute domains validate the values; a
// field whose type does not fit its attribute fails the whole call with
// no further writes.
func Shred(c *codec.Codec, x any) (err error) {
	val := reflect.ValueOf(x)
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}
	// A nil input or nil struct pointer leaves val invalid.
	if val.Kind() != reflect.Struct {
		return NewError(ErrInvalidValue, "bind.invalidStruct", "type", reflect.TypeOf(x))
	}
	typ := val.Type()
	n := typ.NumField()
	for i := 0; i < n; i++ {
		fieldType := typ.Field(i)
		tag, ok := fieldType.Tag.Lookup("aria")
		if !ok {
			continue
		}
		ft, tagErr := parseFieldTag(tag)
		if tagErr != nil {
			err = tagErr
			return
		}
		fieldValue := val.Field(i)
		if fieldValue.Kind() == reflect.Pointer {
			if fieldValue.IsNil() {
				continue
			}
			fieldValue = fieldValue.Elem()
		} else if fieldValue.IsZero() && !ft.keepEmpty {
			continue
		}
		v, fieldErr := fieldInput(fieldType, fieldValue)
		if fieldErr != nil {
			err = fieldErr
			return
		}
		err = c.Set(ft.name, v)
		if err != nil {
			return
		}
	}
	return
}

func fieldInput(fieldType reflect.StructField, fieldValue reflect.Value) (v any, err error) {
	switch fieldValue.Kind() {
	case reflect.Bool:
		v = fieldValue.Bool()
	case reflect.Int:
		v = int(fieldValue.Int())
	case reflect.Float64:
		v = fieldValue.Float()
	case reflect.String:
		v = fieldValue.String()
	default:
		err = NewError(ErrInvalidValue, "bind.invalidFieldType", "field", fieldType.Name, "kind", fieldValue.Kind())
	}
	return
}

// Assemble populates the tagged fields of the struct pointed to by ptr
// from the codec. Absent or malformed attributes leave value fields zero
// and pointer fields nil. A well-formed attribute whose parsed type does
// not fit the field is a caller error.
func Assemble(c *codec.Codec, ptr any) (err error) {
	val := reflect.ValueOf(ptr)
	if val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return NewError(ErrInvalidValue, "bind.invalidStructPointer", "type", reflect.TypeOf(ptr))
	}
	val = val.Elem()
	typ := val.Type()
	n := typ.NumField()
	for i := 0; i < n; i++ {
		fieldType := typ.Field(i)
		tag, ok := fieldType.Tag.Lookup("aria")
		if !ok {
			continue
		}
		ft, tagErr := parseFieldTag(tag)
		if tagErr != nil {
			err = tagErr
			return
		}
		v, getErr := c.Get(ft.name)
		if getErr != nil {
			err = getErr
			return
		}
		fieldValue := val.Field(i)
		if fieldValue.Kind() == reflect.Pointer {
			if v == nil {
				fieldValue.Set(reflect.Zero(fieldValue.Type()))
				continue
			}
			elem := reflect.New(fieldType.Type.Elem())
			err = assignField(fieldType, elem.Elem(), v)
			if err != nil {
				return
			}
			fieldValue.Set(elem)
			continue
		}
		if v == nil {
			fieldValue.Set(reflect.Zero(fieldValue.Type()))
			continue
		}
		err = assignField(fieldType, fieldValue, v)
		if err != nil {
			return
		}
	}
	return
}

func assignField(fieldType reflect.StructField, fieldValue reflect.Value, v Value) (err error) {
	switch fieldValue.Kind() {
	case reflect.String:
		switch typed := v.(type) {
		case String:
			fieldValue.SetString(string(typed))
		case Token:
			fieldValue.SetString(string(typed))
		default:
			err = mismatch(fieldType, v)
		}
	case reflect.Bool:
		typed, ok := v.(Bool)
		if !ok {
			return mismatch(fieldType, v)
		}
		fieldValue.SetBool(bool(typed))
	case reflect.Float64:
		typed, ok := v.(Number)
		if !ok {
			return mismatch(fieldType, v)
		}
		fieldValue.SetFloat(float64(typed))
	case reflect.Int:
		typed, ok := v.(Number)
		if !ok {
			return mismatch(fieldType, v)
		}
		fieldValue.SetInt(int64(typed))
	default:
		err = NewError(ErrInvalidValue, "bind.invalidFieldType", "field", fieldType.Name, "kind", fieldValue.Kind())
	}
	return
}

func mismatch(fieldType reflect.StructField, v Value) error {
	return NewError(ErrInvalidValue, "bind.fieldTypeMismatch", "field", fieldType.Name, "value", v)
}
