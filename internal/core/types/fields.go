package types

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Field is one named value in an entity's ordered field list. Equality,
// hashing and formatting of DTOs are all derived from this list.
type Field struct {
	Name  string
	Value any
}

// FieldsEqual reports whether a and b have the same names in the same order
// with deeply equal values.
func FieldsEqual(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			return false
		}
		if !reflect.DeepEqual(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}

// FieldsHash returns a 64-bit hash of the field list. Lists that are
// FieldsEqual hash to the same value.
func FieldsHash(fields []Field) uint64 {
	d := xxhash.New()
	for _, f := range fields {
		_, _ = d.WriteString(f.Name)
		_, _ = d.Write([]byte{0})
		writeHashValue(d, f.Value)
		_, _ = d.Write([]byte{0xff})
	}
	return d.Sum64()
}

// FieldsString formats the list as Name{a=1, b=x}.
func FieldsString(typeName string, fields []Field) string {
	var sb strings.Builder
	sb.WriteString(typeName)
	sb.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Name)
		sb.WriteByte('=')
		sb.WriteString(formatValue(f.Value))
	}
	sb.WriteByte('}')
	return sb.String()
}

func writeHashValue(d *xxhash.Digest, v any) {
	switch val := v.(type) {
	case nil:
		_, _ = d.WriteString("<nil>")
	case string:
		_, _ = d.WriteString(val)
	case []byte:
		_, _ = d.Write(val)
	case bool:
		_, _ = d.WriteString(strconv.FormatBool(val))
	case int:
		_, _ = d.WriteString(strconv.FormatInt(int64(val), 10))
	case int32:
		_, _ = d.WriteString(strconv.FormatInt(int64(val), 10))
	case int64:
		_, _ = d.WriteString(strconv.FormatInt(val, 10))
	case uint32:
		_, _ = d.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint64:
		_, _ = d.WriteString(strconv.FormatUint(val, 10))
	case fmt.Stringer:
		_, _ = d.WriteString(val.String())
	default:
		// JSON follows pointers and sorts map keys, so deeply equal values encode identically.
		if b, err := json.Marshal(val); err == nil {
			_, _ = d.Write(b)
			return
		}
		_, _ = fmt.Fprintf(d, "%v", val)
	}
}

func formatValue(v any) string {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "<nil>"
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return "<nil>"
	}
	if s, ok := rv.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	if raw, ok := rv.Interface().(json.RawMessage); ok {
		return string(raw)
	}
	if b, ok := rv.Interface().([]byte); ok {
		return fmt.Sprintf("%x", b)
	}
	return fmt.Sprintf("%v", rv.Interface())
}
