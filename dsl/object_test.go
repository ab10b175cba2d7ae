package dsl_test

import (
	"strings"
	"testing"

	aison "github.com/gidapataki/aison-sub000"
	"github.com/gidapataki/aison-sub000/dsl"
	"github.com/gidapataki/aison-sub000/node"
)

type user struct {
	Name string
	Age  int64
	Nick *string
}

func userSchema(opts ...aison.Option) (*aison.Schema, aison.TypeOf[user]) {
	sc := aison.New(opts...)
	u := dsl.Object[user](sc, "User")
	dsl.Field(u, "name", dsl.String(), func(p *user) *string { return &p.Name })
	dsl.Field(u, "age", dsl.Int64(), func(p *user) *int64 { return &p.Age })
	dsl.Field(u, "nick", dsl.Optional(dsl.String()), func(p *user) **string { return &p.Nick })
	return sc, u
}

func TestObjectRoundTrip(t *testing.T) {
	sc, u := userSchema()
	nick := "kp"
	in := user{Name: "kira", Age: 9, Nick: &nick}

	n, iss := aison.Encode(sc, u, in)
	if !iss.Empty() {
		t.Fatalf("encode: %v", iss)
	}
	if got := n.Keys(); len(got) != 3 || got[0] != "name" || got[1] != "age" || got[2] != "nick" {
		t.Fatalf("member order: %v", got)
	}

	out, iss := aison.Decode(sc, u, n)
	if !iss.Empty() {
		t.Fatalf("decode: %v", iss)
	}
	if out.Name != in.Name || out.Age != in.Age || out.Nick == nil || *out.Nick != nick {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestDecodeCollectsAllMissingFields(t *testing.T) {
	sc, u := userSchema()
	_, iss := aison.Decode(sc, u, node.NewObject())
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %v", iss)
	}
	for _, it := range iss {
		if it.Code != aison.CodeRequired {
			t.Fatalf("expected required, got %s", it.Code)
		}
		if it.Path != "$" {
			t.Fatalf("missing keys report at the object path, got %s", it.Path)
		}
	}
	if !strings.Contains(iss[0].Hint, "name") || !strings.Contains(iss[1].Hint, "age") {
		t.Fatalf("hints should name the fields: %v", iss)
	}
}

func TestNestedErrorPath(t *testing.T) {
	type item struct{ B string }
	type doc struct{ A []item }

	sc := aison.New()
	it := dsl.Object[item](sc, "Item")
	dsl.Field(it, "b", dsl.String(), func(p *item) *string { return &p.B })
	d := dsl.Object[doc](sc, "Doc")
	dsl.Field(d, "a", dsl.Slice[item](it), func(p *doc) *[]item { return &p.A })

	n, err := node.FromJSON([]byte(`{"a":[{"b":"x"},{"b":5}]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, iss := aison.Decode(sc, d, n)
	if len(iss) != 1 {
		t.Fatalf("expected exactly 1 issue, got %v", iss)
	}
	if iss[0].Path != "$.a[1].b" {
		t.Fatalf("path: got %s", iss[0].Path)
	}
	if iss[0].Code != aison.CodeInvalidType {
		t.Fatalf("code: got %s", iss[0].Code)
	}
	// the healthy element still decodes
	if len(out.A) != 2 || out.A[0].B != "x" {
		t.Fatalf("best-effort result: %+v", out)
	}
}

func TestOptionalOmissionLenient(t *testing.T) {
	sc, u := userSchema()
	n, iss := aison.Encode(sc, u, user{Name: "a", Age: 1})
	if !iss.Empty() {
		t.Fatalf("encode: %v", iss)
	}
	if n.Has("nick") {
		t.Fatalf("nil optional must be omitted, got %s", n)
	}
	out, iss := aison.Decode(sc, u, n)
	if !iss.Empty() {
		t.Fatalf("decode: %v", iss)
	}
	if out.Nick != nil {
		t.Fatalf("missing optional must decode to nil")
	}
}

func TestOptionalOmissionStrict(t *testing.T) {
	sc, u := userSchema(aison.StrictOptional())
	n, iss := aison.Encode(sc, u, user{Name: "a", Age: 1})
	if !iss.Empty() {
		t.Fatalf("encode: %v", iss)
	}
	v, ok := n.Get("nick")
	if !ok || !v.IsNull() {
		t.Fatalf("strict encode must emit the key as null, got %s", n)
	}

	// round-trips under strict mode
	out, iss := aison.Decode(sc, u, n)
	if !iss.Empty() {
		t.Fatalf("decode: %v", iss)
	}
	if out.Nick != nil {
		t.Fatalf("null optional must decode to nil")
	}

	// a genuinely missing key is now a structural error
	partial := node.NewObject()
	partial.Set("name", node.String("a"))
	partial.Set("age", node.Int(1))
	_, iss = aison.Decode(sc, u, partial)
	if !hasIssue(iss, aison.CodeRequired) {
		t.Fatalf("expected required, got %v", iss)
	}
}

func TestDuplicateFieldPanicPolicy(t *testing.T) {
	sc := aison.New(aison.WithPolicy(aison.PanicPolicy{}))
	o := dsl.Object[user](sc, "User")
	dsl.Field(o, "name", dsl.String(), func(p *user) *string { return &p.Name })

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic on duplicate field")
		}
		if !strings.Contains(r.(string), "duplicate field") {
			t.Fatalf("panic message: %v", r)
		}
	}()
	dsl.Field(o, "name", dsl.String(), func(p *user) *string { return &p.Name })
}

func TestDuplicateMemberReportPolicy(t *testing.T) {
	sc := aison.New()
	o := dsl.Object[user](sc, "User")
	dsl.Field(o, "name", dsl.String(), func(p *user) *string { return &p.Name })
	// different key, same struct member
	dsl.Field(o, "alias", dsl.String(), func(p *user) *string { return &p.Name })

	n, iss := aison.Encode(sc, o, user{Name: "x"})
	it, ok := issueAt(iss, aison.CodeSchemaViolation)
	if !ok {
		t.Fatalf("expected schema_violation, got %v", iss)
	}
	if !strings.Contains(it.Message, "alias") {
		t.Fatalf("violation should name the losing field: %v", it)
	}
	// first registration wins; the conflicting one is dropped
	if keys := n.Keys(); len(keys) != 1 || keys[0] != "name" {
		t.Fatalf("keys: %v", keys)
	}

	// reported once per call, not once per use
	count := 0
	for _, i := range iss {
		if i.Code == aison.CodeSchemaViolation {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("violation reported %d times", count)
	}
}
