package snbt

import (
	"strconv"
	"strings"
)

// Number is a typed SNBT numeric. SNBT carries a type suffix, JSON does not.
type Number interface {
	SNBT() string
	Plain() string
}

// Byte is an SNBT byte like "1b".
type Byte int8

func (b Byte) SNBT() string  { return b.Plain() + "b" }
func (b Byte) Plain() string { return strconv.FormatInt(int64(b), 10) }

// Short is an SNBT short like "123s".
type Short int16

func (s Short) SNBT() string  { return s.Plain() + "s" }
func (s Short) Plain() string { return strconv.FormatInt(int64(s), 10) }

// Int is an SNBT int; it has no suffix.
type Int int32

func (i Int) SNBT() string  { return i.Plain() }
func (i Int) Plain() string { return strconv.FormatInt(int64(i), 10) }

// Long is an SNBT long like "123l".
type Long int64

func (l Long) SNBT() string  { return l.Plain() + "l" }
func (l Long) Plain() string { return strconv.FormatInt(int64(l), 10) }

// Float is an SNBT float like "1.5f".
type Float float32

func (f Float) SNBT() string  { return f.Plain() + "f" }
func (f Float) Plain() string { return strconv.FormatFloat(float64(f), 'f', -1, 32) }

// Double is an SNBT double like "-0.75d".
type Double float64

func (d Double) SNBT() string  { return d.Plain() + "d" }
func (d Double) Plain() string { return strconv.FormatFloat(float64(d), 'f', -1, 64) }

// IntArray is an SNBT int array like "[I;0,0,0,0]".
type IntArray []int32

func (a IntArray) SNBT() string  { return "[I;" + a.join() + "]" }
func (a IntArray) Plain() string { return "[" + a.join() + "]" }

func (a IntArray) join() string {
	var b strings.Builder
	for i, v := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return b.String()
}
