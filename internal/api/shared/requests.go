package shared

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// DecodeForm populates the given struct pointer from either a JSON body
// or multipart/urlencoded form fields, depending on the request content
// type. Multipart requests carry their file separately; only the value
// fields are decoded here. Form values are converted according to the
// target field's type, keyed by its json tag.
func DecodeForm(r *http.Request, v interface{}) error {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") &&
		!strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		return DecodeJSON(r, v)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("DecodeForm requires a struct pointer, got %T", v)
	}
	elem := rv.Elem()
	t := elem.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := jsonFieldName(field)
		if name == "" {
			continue
		}
		if _, ok := r.Form[name]; !ok {
			continue
		}
		raw := r.Form.Get(name)
		if err := setFormField(elem.Field(i), raw); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}

	return nil
}

// jsonFieldName returns the effective json key for a struct field, or ""
// when the field is unexported or explicitly skipped.
func jsonFieldName(field reflect.StructField) string {
	if field.PkgPath != "" {
		return ""
	}
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name := strings.Split(tag, ",")[0]
	if name == "" {
		name = field.Name
	}
	return name
}

// setFormField converts a form string onto the target value. Pointer
// targets are allocated, which is how optional booleans distinguish an
// explicit false from an absent field.
func setFormField(target reflect.Value, raw string) error {
	if target.Kind() == reflect.Ptr {
		target.Set(reflect.New(target.Type().Elem()))
		target = target.Elem()
	}

	switch target.Kind() {
	case reflect.String:
		target.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("expected boolean, got %q", raw)
		}
		target.SetBool(b)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("expected number, got %q", raw)
		}
		target.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("expected integer, got %q", raw)
		}
		target.SetInt(n)
	default:
		return fmt.Errorf("unsupported field type %s", target.Kind())
	}

	return nil
}
