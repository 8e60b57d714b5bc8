// Package snbt builds and encodes the structured literals used by Minecraft
// commands: stringified NBT (SNBT) and the JSON dialect used by text components.
//
// Values are plain Go values:
//   - *Compound for compounds (ordered), map[string]any for unordered compounds
//   - List or []any for lists
//   - string, bool, int, int64, float64
//   - the typed numerics in this package (Byte, Short, Int, Long, Float, Double, IntArray)
//   - Raw for fragments that are already encoded
package snbt

// Value is the generic SNBT value type.
type Value = any

// Entry is a single key/value pair in a Compound.
type Entry struct {
	Key   string
	Value Value
}

// Compound is an SNBT compound that keeps its keys in insertion order.
// Command syntax is order-sensitive for readers even when the game is not,
// so every builder in this module emits compounds through this type.
type Compound struct {
	entries []Entry
	index   map[string]int

	// QuoteKeys forces keys to be emitted as quoted strings in SNBT, as
	// required for namespaced ids like "minecraft:sharpness".
	QuoteKeys bool
}

// NewCompound returns an empty compound.
func NewCompound() *Compound {
	return &Compound{index: make(map[string]int)}
}

// NewQuotedCompound returns an empty compound whose keys are always quoted.
func NewQuotedCompound() *Compound {
	c := NewCompound()
	c.QuoteKeys = true
	return c
}

// Set stores v under key. Setting an existing key replaces its value in place
// and keeps the original position.
func (c *Compound) Set(key string, v Value) *Compound {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[key]; ok {
		c.entries[i].Value = v
		return c
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, Entry{Key: key, Value: v})
	return c
}

// Has returns true if c has a value for key.
func (c *Compound) Has(key string) bool {
	_, ok := c.index[key]
	return ok
}

// Get returns the value for key, or nil.
func (c *Compound) Get(key string) Value {
	if i, ok := c.index[key]; ok {
		return c.entries[i].Value
	}
	return nil
}

// GetString returns the value of key as a string, or "".
func (c *Compound) GetString(key string) string {
	s, _ := c.Get(key).(string)
	return s
}

// Len is the number of entries.
func (c *Compound) Len() int { return len(c.entries) }

// Entries returns the entries in insertion order.
func (c *Compound) Entries() []Entry { return c.entries }

// List is an SNBT list.
type List []Value

// Raw is an already-encoded fragment written verbatim by the encoder.
type Raw string
