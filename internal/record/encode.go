package record

import jsoniter "github.com/json-iterator/go"

var (
	compactJSON = jsoniter.Config{EscapeHTML: false}.Froze()
	indentJSON  = jsoniter.Config{EscapeHTML: false, IndentionStep: 2}.Froze()
)

// Encode renders r as JSON, keeping key order. With indent set the output
// uses two-space indentation.
func Encode(r Record, indent bool) []byte {
	return EncodeValue(Object(r), indent)
}

// EncodeValue renders a single value as JSON.
func EncodeValue(v Value, indent bool) []byte {
	api := compactJSON
	if indent {
		api = indentJSON
	}
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	writeValue(stream, v)
	return append([]byte(nil), stream.Buffer()...)
}

func writeValue(stream *jsoniter.Stream, v Value) {
	switch v.kind {
	case KindBool:
		stream.WriteBool(v.b)
	case KindNumber:
		stream.WriteRaw(v.text)
	case KindString:
		stream.WriteString(v.text)
	case KindObject:
		writeRecord(stream, v.obj)
	case KindArray:
		if len(v.arr) == 0 {
			stream.WriteEmptyArray()
			return
		}
		stream.WriteArrayStart()
		for i, item := range v.arr {
			if i > 0 {
				stream.WriteMore()
			}
			writeValue(stream, item)
		}
		stream.WriteArrayEnd()
	default:
		stream.WriteNil()
	}
}

func writeRecord(stream *jsoniter.Stream, r Record) {
	if len(r.fields) == 0 {
		stream.WriteEmptyObject()
		return
	}
	stream.WriteObjectStart()
	for i, f := range r.fields {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(f.Key)
		writeValue(stream, f.Value)
	}
	stream.WriteObjectEnd()
}
