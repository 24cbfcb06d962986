package ui

import (
	"strings"

	"github.com/five82/jlv/internal/record"
)

// Placeholders for fields a record does not carry.
const (
	NoLevel = "[NONE]"
	NoTime  = "--------------------------------"
)

// FieldNames lists the candidate keys read for each rendered column.
type FieldNames struct {
	Level   []string
	Time    []string
	Message []string
	Context []string
}

// DefaultFieldNames returns the stock candidate keys.
func DefaultFieldNames() FieldNames {
	return FieldNames{
		Level:   []string{"level_name", "level", "severity"},
		Time:    []string{"datetime", "time", "timestamp", "ts"},
		Message: []string{"message", "msg"},
		Context: []string{"context", "extra"},
	}
}

// Pair is one rendered context entry.
type Pair struct {
	Key   string
	Value string
}

// Row is the display form of a record.
type Row struct {
	Level   string
	Time    string
	Message string
	Context []Pair
}

// ContextText joins the context pairs as "key = value, key = value".
func (r Row) ContextText() string {
	if len(r.Context) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range r.Context {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Key)
		b.WriteString(" = ")
		b.WriteString(p.Value)
	}
	return b.String()
}

// Project reads the display fields out of rec. Missing or wrong-typed fields
// fall back to placeholders; Project never fails and never mutates rec.
func Project(rec record.Record, fields FieldNames) Row {
	row := Row{
		Level:   firstString(rec, fields.Level, NoLevel),
		Time:    firstString(rec, fields.Time, NoTime),
		Message: firstString(rec, fields.Message, ""),
	}
	for _, key := range fields.Context {
		v, ok := rec.Get(key)
		if !ok {
			continue
		}
		obj, ok := v.Object()
		if !ok {
			continue
		}
		row.Context = make([]Pair, 0, obj.Len())
		for k, val := range obj.All() {
			row.Context = append(row.Context, Pair{Key: k, Value: val.Text()})
		}
		break
	}
	return row
}

func firstString(rec record.Record, keys []string, fallback string) string {
	for _, key := range keys {
		if s, ok := rec.GetString(key); ok {
			return s
		}
	}
	return fallback
}
