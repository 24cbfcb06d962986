package record

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/valyala/fastjson"
)

var (
	// ErrEmptyLine is returned for lines with no content.
	ErrEmptyLine = errors.New("empty line")
	// ErrNotObject is returned when the line is valid JSON but not an object.
	ErrNotObject = errors.New("not a JSON object")
)

// Parser turns lines into records. It reuses its internal buffers between
// calls and is not safe for concurrent use.
type Parser struct {
	p fastjson.Parser
}

// Parse decodes one line into a Record.
func (p *Parser) Parse(line []byte) (Record, error) {
	return parseWith(&p.p, line)
}

var pool fastjson.ParserPool

// Parse decodes one line into a Record. It is safe for concurrent use.
func Parse(line []byte) (Record, error) {
	p := pool.Get()
	defer pool.Put(p)
	return parseWith(p, line)
}

func parseWith(p *fastjson.Parser, line []byte) (Record, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return Record{}, ErrEmptyLine
	}
	v, err := p.ParseBytes(line)
	if err != nil {
		return Record{}, fmt.Errorf("parse record: %w", err)
	}
	if v.Type() != fastjson.TypeObject {
		return Record{}, fmt.Errorf("parse record: %w (got %s)", ErrNotObject, v.Type())
	}
	obj, err := v.Object()
	if err != nil {
		return Record{}, fmt.Errorf("parse record: %w", err)
	}
	return convertObject(obj), nil
}

func convertObject(obj *fastjson.Object) Record {
	fields := make([]Field, 0, obj.Len())
	obj.Visit(func(key []byte, v *fastjson.Value) {
		fields = append(fields, Field{Key: string(key), Value: convertValue(v)})
	})
	return New(fields...)
}

func convertValue(v *fastjson.Value) Value {
	switch v.Type() {
	case fastjson.TypeObject:
		obj, _ := v.Object()
		return Object(convertObject(obj))
	case fastjson.TypeArray:
		items, _ := v.Array()
		out := make([]Value, len(items))
		for i, item := range items {
			out[i] = convertValue(item)
		}
		return Value{kind: KindArray, arr: out}
	case fastjson.TypeString:
		b, _ := v.StringBytes()
		return String(string(b))
	case fastjson.TypeNumber:
		return Number(v.String())
	case fastjson.TypeTrue:
		return Bool(true)
	case fastjson.TypeFalse:
		return Bool(false)
	default:
		return Null()
	}
}
