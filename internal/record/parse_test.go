package record

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse_AllValueKinds(t *testing.T) {
	line := []byte(`{"s":"hi","n":-1.5e3,"t":true,"f":false,"z":null,"o":{"k":"v"},"a":[1,"two",null]}`)

	rec, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	wantKeys := []string{"s", "n", "t", "f", "z", "o", "a"}
	if got := rec.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Fatalf("Keys() = %v, want %v", got, wantKeys)
	}

	if s, ok := rec.GetString("s"); !ok || s != "hi" {
		t.Fatalf("GetString(s) = %q, %v, want hi, true", s, ok)
	}
	n, _ := rec.Get("n")
	if f, ok := n.Float(); !ok || f != -1500 {
		t.Fatalf("n.Float() = %v, %v, want -1500, true", f, ok)
	}
	if lit, _ := n.Literal(); lit != "-1.5e3" {
		t.Fatalf("n.Literal() = %q, want -1.5e3", lit)
	}
	tv, _ := rec.Get("t")
	if b, ok := tv.Bool(); !ok || !b {
		t.Fatalf("t.Bool() = %v, %v, want true, true", b, ok)
	}
	fv, _ := rec.Get("f")
	if b, ok := fv.Bool(); !ok || b {
		t.Fatalf("f.Bool() = %v, %v, want false, true", b, ok)
	}
	zv, ok := rec.Get("z")
	if !ok || !zv.IsNull() {
		t.Fatalf("z = %v (present %v), want null", zv.Kind(), ok)
	}
	ov, _ := rec.Get("o")
	nested, ok := ov.Object()
	if !ok {
		t.Fatalf("o.Kind() = %v, want object", ov.Kind())
	}
	if s, _ := nested.GetString("k"); s != "v" {
		t.Fatalf("o.k = %q, want v", s)
	}
	av, _ := rec.Get("a")
	items, ok := av.Array()
	if !ok || len(items) != 3 {
		t.Fatalf("a = %v items (ok %v), want 3", len(items), ok)
	}
	if items[1].Kind() != KindString || !items[2].IsNull() {
		t.Fatalf("a kinds = %v %v %v, want number string null", items[0].Kind(), items[1].Kind(), items[2].Kind())
	}
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"empty", "", ErrEmptyLine},
		{"blank", "  \t ", ErrEmptyLine},
		{"array", `[1,2]`, ErrNotObject},
		{"string", `"just text"`, ErrNotObject},
		{"number", `42`, ErrNotObject},
		{"truncated", `{"a":`, nil},
		{"garbage", `level=info msg=hello`, nil},
		{"trailing data", `{"a":1} {"b":2}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.line))
			if err == nil {
				t.Fatalf("Parse(%q) error = nil, want failure", tt.line)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.line, err, tt.wantErr)
			}
		})
	}
}

func TestParse_ToleratesCRLF(t *testing.T) {
	rec, err := Parse([]byte("{\"message\":\"x\"}\r"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if s, _ := rec.GetString("message"); s != "x" {
		t.Fatalf("message = %q, want x", s)
	}
}

func TestParse_KeepsLargeIntegerLiteral(t *testing.T) {
	rec, err := Parse([]byte(`{"id":12345678901234567890,"small":7}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	id, _ := rec.Get("id")
	if lit, _ := id.Literal(); lit != "12345678901234567890" {
		t.Fatalf("id literal = %q, want 12345678901234567890", lit)
	}
	if _, ok := id.Int(); ok {
		t.Fatalf("id.Int() ok = true, want false for out of range literal")
	}
	small, _ := rec.Get("small")
	if n, ok := small.Int(); !ok || n != 7 {
		t.Fatalf("small.Int() = %d, %v, want 7, true", n, ok)
	}
}

func TestParse_DuplicateKeysLastValueWins(t *testing.T) {
	rec, err := Parse([]byte(`{"a":1,"b":2,"a":3}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := rec.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("Keys() = %v, want [a b]", got)
	}
	a, _ := rec.Get("a")
	if lit, _ := a.Literal(); lit != "3" {
		t.Fatalf("a = %q, want 3", lit)
	}
}

func TestParser_ReuseDoesNotAliasRecords(t *testing.T) {
	var p Parser
	first, err := p.Parse([]byte(`{"message":"first"}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if _, err := p.Parse([]byte(`{"message":"second, and longer"}`)); err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if s, _ := first.GetString("message"); s != "first" {
		t.Fatalf("first.message = %q after reuse, want first", s)
	}
}

func TestParser_ErrorDoesNotPoisonNextLine(t *testing.T) {
	var p Parser
	if _, err := p.Parse([]byte(`{nope`)); err == nil {
		t.Fatal("Parse(malformed) error = nil, want failure")
	}
	rec, err := p.Parse([]byte(`{"ok":true}`))
	if err != nil {
		t.Fatalf("Parse after failure returned error: %v", err)
	}
	if rec.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", rec.Len())
	}
}
