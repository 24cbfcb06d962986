package record

import "iter"

// Field is one key/value pair of a Record.
type Field struct {
	Key   string
	Value Value
}

// Record is an ordered mapping from keys to values, produced from a single
// input line. The zero Record is empty and ready to use.
type Record struct {
	fields []Field
}

// New builds a Record from fields in order. A repeated key keeps the position
// of its first occurrence and the value of its last.
func New(fields ...Field) Record {
	if len(fields) == 0 {
		return Record{}
	}
	out := make([]Field, 0, len(fields))
	var seen map[string]int
	if len(fields) > smallRecord {
		seen = make(map[string]int, len(fields))
	}
	for _, f := range fields {
		if idx, ok := lookup(out, seen, f.Key); ok {
			out[idx].Value = f.Value
			continue
		}
		if seen != nil {
			seen[f.Key] = len(out)
		}
		out = append(out, f)
	}
	return Record{fields: out}
}

// Records below this size dedupe keys with a linear scan.
const smallRecord = 16

func lookup(fields []Field, seen map[string]int, key string) (int, bool) {
	if seen != nil {
		idx, ok := seen[key]
		return idx, ok
	}
	for i := range fields {
		if fields[i].Key == key {
			return i, true
		}
	}
	return -1, false
}

// Len returns the number of keys.
func (r Record) Len() int { return len(r.fields) }

// Get returns the value stored under key.
func (r Record) Get(key string) (Value, bool) {
	for i := range r.fields {
		if r.fields[i].Key == key {
			return r.fields[i].Value, true
		}
	}
	return Value{}, false
}

// GetString returns the value under key when it is present and a string.
func (r Record) GetString(key string) (string, bool) {
	v, ok := r.Get(key)
	if !ok {
		return "", false
	}
	return v.Str()
}

// Keys returns the keys in document order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// All iterates over the fields in document order.
func (r Record) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, f := range r.fields {
			if !yield(f.Key, f.Value) {
				return
			}
		}
	}
}

// MarshalJSON encodes r as compact JSON in document order.
func (r Record) MarshalJSON() ([]byte, error) {
	return Encode(r, false), nil
}
