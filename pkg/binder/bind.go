package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/paramguard/pkg/validator"
)

// TagName is the struct tag read by Bind.
const TagName = "param"

var timeType = reflect.TypeOf(time.Time{})

// Bind copies parameters into the struct pointed to by v.
//
// Fields are matched by the `param` tag, or by the lowercased field name when
// the tag is absent; `param:"-"` skips a field. time.Time fields accept a
// temporal type as tag option, e.g. `param:"from,local-date-time"`, and
// default to local-date. Slice fields split the value on commas. Absent
// parameters leave the field untouched.
//
// Bind performs conversion only; run the validation chain first.
func Bind(params validator.Params, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", ErrFailedToBind)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", ErrFailedToBind)
	}
	if params == nil {
		return nil
	}

	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		name, option, skip := parseFieldTag(sf)
		if skip {
			continue
		}

		value, ok := params.Get(name)
		if !ok {
			continue
		}

		if err := setFieldValue(field, sf.Type, value, option); err != nil {
			return fmt.Errorf("%w: field %s: %v", ErrFailedToBind, sf.Name, err)
		}
	}

	return nil
}

// parseFieldTag returns the parameter name and the first tag option.
func parseFieldTag(field reflect.StructField) (name, option string, skip bool) {
	tag := field.Tag.Get(TagName)
	if tag == "" {
		return strings.ToLower(field.Name), "", false
	}
	if tag == "-" {
		return "", "", true
	}

	name, option, _ = strings.Cut(tag, ",")
	if name == "" {
		name = strings.ToLower(field.Name)
	}
	return name, option, false
}

func setFieldValue(field reflect.Value, fieldType reflect.Type, value, option string) error {
	if fieldType.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), value, option)
	}

	if fieldType == timeType {
		typ := validator.LocalDate
		if option != "" {
			typ = validator.TemporalType(option)
		}
		t, err := typ.Parse(value)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(t))
		return nil
	}

	switch fieldType.Kind() {
	case reflect.Slice:
		return setSliceValue(field, fieldType, value, option)

	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			switch strings.ToLower(value) {
			case "on", "yes":
				b = true
			case "off", "no", "":
				b = false
			default:
				return fmt.Errorf("invalid bool value %q", value)
			}
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", fieldType.Kind())
	}

	return nil
}

func setSliceValue(field reflect.Value, fieldType reflect.Type, value, option string) error {
	var parts []string
	if value != "" {
		parts = strings.Split(value, ",")
	}

	slice := reflect.MakeSlice(fieldType, len(parts), len(parts))
	for i, part := range parts {
		if err := setFieldValue(slice.Index(i), fieldType.Elem(), strings.TrimSpace(part), option); err != nil {
			return err
		}
	}

	field.Set(slice)
	return nil
}
