package snbt

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Dialect selects the punctuation rules used by an Encoder.
type Dialect int

const (
	// SNBT emits bare keys where legal and suffixed numerics.
	SNBT Dialect = iota
	// JSON quotes every key and emits numerics without suffixes.
	JSON
)

// Encoder writes values in one dialect. Output is compact: no whitespace
// between tokens, which is what command parsers expect.
type Encoder struct {
	w       io.Writer
	dialect Dialect
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer, d Dialect) *Encoder {
	return &Encoder{w: w, dialect: d}
}

// Encode writes v.
func (e *Encoder) Encode(v Value) error { return e.encodeValue(v) }

// Encode encodes v as SNBT.
func Encode(w io.Writer, v Value) error { return NewEncoder(w, SNBT).Encode(v) }

// EncodeJSON encodes v as JSON.
func EncodeJSON(w io.Writer, v Value) error { return NewEncoder(w, JSON).Encode(v) }

// Marshal returns the SNBT encoding of v.
func Marshal(v Value) (string, error) { return marshal(v, SNBT) }

// MarshalJSON returns the JSON encoding of v.
func MarshalJSON(v Value) (string, error) { return marshal(v, JSON) }

func marshal(v Value, d Dialect) (string, error) {
	var b strings.Builder
	if err := NewEncoder(&b, d).Encode(v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (e *Encoder) encodeValue(v any) error {
	w := e.w
	switch x := v.(type) {
	case nil:
		return errors.New("snbt: cannot encode nil value")
	case *Compound:
		return e.encodeCompound(x)
	case map[string]any:
		return e.encodeMap(x)
	case List:
		return e.encodeList(x)
	case []any:
		return e.encodeList(x)
	case Raw:
		io.WriteString(w, string(x))
		return nil
	case string:
		encodeString(w, x)
		return nil
	case bool:
		if x {
			io.WriteString(w, "true")
		} else {
			io.WriteString(w, "false")
		}
		return nil
	case int:
		io.WriteString(w, strconv.FormatInt(int64(x), 10))
		return nil
	case int64:
		io.WriteString(w, strconv.FormatInt(x, 10))
		return nil
	case float32:
		encodeFloat(w, float64(x))
		return nil
	case float64:
		encodeFloat(w, x)
		return nil
	case Number:
		if e.dialect == JSON {
			io.WriteString(w, x.Plain())
		} else {
			io.WriteString(w, x.SNBT())
		}
		return nil
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int8, reflect.Int16, reflect.Int32:
			io.WriteString(w, strconv.FormatInt(rv.Int(), 10))
			return nil
		case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
			io.WriteString(w, strconv.FormatUint(rv.Uint(), 10))
			return nil
		case reflect.Float32, reflect.Float64:
			encodeFloat(w, rv.Convert(reflect.TypeOf(float64(0))).Float())
			return nil
		}
	}
	return fmt.Errorf("snbt: unsupported type %T", v)
}

func (e *Encoder) encodeCompound(c *Compound) error {
	io.WriteString(e.w, "{")
	for i, ent := range c.Entries() {
		if i > 0 {
			io.WriteString(e.w, ",")
		}
		e.encodeKey(ent.Key, c.QuoteKeys)
		io.WriteString(e.w, ":")
		if err := e.encodeValue(ent.Value); err != nil {
			return fmt.Errorf("%s: %w", ent.Key, err)
		}
	}
	io.WriteString(e.w, "}")
	return nil
}

// encodeMap writes an unordered compound with its keys sorted.
func (e *Encoder) encodeMap(m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	c := NewCompound()
	for _, k := range keys {
		c.Set(k, m[k])
	}
	return e.encodeCompound(c)
}

func (e *Encoder) encodeList(l []any) error {
	io.WriteString(e.w, "[")
	for i, it := range l {
		if i > 0 {
			io.WriteString(e.w, ",")
		}
		if err := e.encodeValue(it); err != nil {
			return err
		}
	}
	io.WriteString(e.w, "]")
	return nil
}

func (e *Encoder) encodeKey(k string, quote bool) {
	if e.dialect == SNBT && !quote && isIdent(k) {
		io.WriteString(e.w, k)
		return
	}
	encodeString(e.w, k)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	r, size := utf8.DecodeRuneInString(s)
	if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r == '_') {
		return false
	}
	for _, r := range s[size:] {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			continue
		}
		return false
	}
	return true
}

// Quote returns s as a double-quoted string literal, valid in both dialects.
func Quote(s string) string {
	var b strings.Builder
	encodeString(&b, s)
	return b.String()
}

// QuoteSingle returns s as a single-quoted SNBT string literal. It is used to
// embed an encoded JSON text component inside NBT, where the payload is full
// of double quotes.
func QuoteSingle(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

func encodeString(w io.Writer, s string) {
	io.WriteString(w, "\"")
	for _, r := range s {
		switch r {
		case '\\':
			io.WriteString(w, "\\\\")
		case '"':
			io.WriteString(w, "\\\"")
		case '\n':
			io.WriteString(w, "\\n")
		case '\r':
			io.WriteString(w, "\\r")
		case '\t':
			io.WriteString(w, "\\t")
		default:
			if r < 0x20 {
				io.WriteString(w, "\\u")
				hex := strconv.FormatInt(int64(r), 16)
				for i := 0; i < 4-len(hex); i++ {
					io.WriteString(w, "0")
				}
				io.WriteString(w, hex)
			} else {
				io.WriteString(w, string(r))
			}
		}
	}
	io.WriteString(w, "\"")
}

func encodeFloat(w io.Writer, f float64) {
	// Use 'g' for compact form, but ensure a decimal point exists
	s := strconv.FormatFloat(f, 'g', -1, 64)
	hasDot := false
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == 'e' || s[i] == 'E' {
			hasDot = true
			break
		}
	}
	if !hasDot {
		s = s + ".0"
	}
	io.WriteString(w, s)
}
