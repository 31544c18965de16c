package otio

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Encode renders v as pretty-printed JSON text with the given indent
// width. Object keys stay in insertion order, empty arrays and objects
// render compactly, and Decimal values always keep a fractional digit.
func Encode(v any, indent int) (string, error) {
	var b strings.Builder
	if err := encodeValue(&b, v, indent, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func encodeValue(b *strings.Builder, v any, indent, depth int) error {
	switch t := v.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		if t {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case string:
		escaped, err := json.Marshal(t)
		if err != nil {
			return err
		}
		b.Write(escaped)
	case Decimal:
		b.WriteString(formatDecimal(float64(t)))
	case int:
		b.WriteString(strconv.Itoa(t))
	case int64:
		b.WriteString(strconv.FormatInt(t, 10))
	case float64:
		b.WriteString(strconv.FormatFloat(t, 'g', -1, 64))
	case []any:
		return encodeArray(b, t, indent, depth)
	case *Object:
		return encodeObject(b, t, indent, depth)
	default:
		return fmt.Errorf("cannot encode value of type %T", v)
	}
	return nil
}

func encodeArray(b *strings.Builder, items []any, indent, depth int) error {
	if len(items) == 0 {
		b.WriteString("[]")
		return nil
	}
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
		pad(b, indent, depth+1)
		if err := encodeValue(b, item, indent, depth+1); err != nil {
			return err
		}
	}
	b.WriteByte('\n')
	pad(b, indent, depth)
	b.WriteByte(']')
	return nil
}

func encodeObject(b *strings.Builder, obj *Object, indent, depth int) error {
	if obj == nil || obj.Len() == 0 {
		b.WriteString("{}")
		return nil
	}
	b.WriteByte('{')
	for i, key := range obj.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
		pad(b, indent, depth+1)
		escaped, err := json.Marshal(key)
		if err != nil {
			return err
		}
		b.Write(escaped)
		b.WriteString(": ")
		if err := encodeValue(b, obj.values[key], indent, depth+1); err != nil {
			return err
		}
	}
	b.WriteByte('\n')
	pad(b, indent, depth)
	b.WriteByte('}')
	return nil
}

// formatDecimal writes up to 4 fractional digits, trims trailing
// zeros, and never trims down to a bare integer.
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}

func pad(b *strings.Builder, indent, depth int) {
	for i := 0; i < indent*depth; i++ {
		b.WriteByte(' ')
	}
}
