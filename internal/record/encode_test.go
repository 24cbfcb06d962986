package record

import (
	"encoding/json"
	"testing"
)

func TestEncode_PreservesKeyOrder(t *testing.T) {
	in := `{"zeta":1,"alpha":"a","mid":{"y":null,"b":[true,false]},"empty":{},"none":[]}`
	rec, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := string(Encode(rec, false)); got != in {
		t.Fatalf("Encode = %s, want %s", got, in)
	}
}

func TestEncode_Indent(t *testing.T) {
	rec := New(
		Field{Key: "a", Value: Number("1")},
		Field{Key: "b", Value: Object(New(Field{Key: "c", Value: Bool(true)}))},
	)
	want := "{\n  \"a\": 1,\n  \"b\": {\n    \"c\": true\n  }\n}"
	if got := string(Encode(rec, true)); got != want {
		t.Fatalf("Encode(indent) = %q, want %q", got, want)
	}
}

func TestEncode_EscapesStrings(t *testing.T) {
	rec := New(Field{Key: "msg", Value: String("a \"quoted\" <tag>\n")})
	out := Encode(rec, false)

	var decoded map[string]string
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Encode produced invalid JSON %s: %v", out, err)
	}
	if decoded["msg"] != "a \"quoted\" <tag>\n" {
		t.Fatalf("round trip msg = %q", decoded["msg"])
	}
}

func TestValueText(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"string bare", String("plain"), "plain"},
		{"number", Number("42"), "42"},
		{"bool", Bool(false), "false"},
		{"null", Null(), "null"},
		{"array", Array(Number("1"), String("x")), `[1,"x"]`},
		{"object", Object(New(Field{Key: "k", Value: String("v")})), `{"k":"v"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Text(); got != tt.want {
				t.Fatalf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordMarshalJSON(t *testing.T) {
	rec := New(Field{Key: "b", Value: Number("2")}, Field{Key: "a", Value: Number("1")})
	out, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("json.Marshal returned error: %v", err)
	}
	if string(out) != `{"b":2,"a":1}` {
		t.Fatalf("json.Marshal = %s, want {\"b\":2,\"a\":1}", out)
	}
}
