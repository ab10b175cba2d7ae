package dsl

import (
	"fmt"
	"reflect"
	"sync"

	aison "github.com/gidapataki/aison-sub000"
	"github.com/gidapataki/aison-sub000/i18n"
	"github.com/gidapataki/aison-sub000/node"
)

// ObjectType maps a struct T field-by-field. Fields encode and decode in
// declaration order; decoding always attempts every declared field and
// accumulates every field-level issue.
type ObjectType[T any] struct {
	aison.Base[T]
	id         aison.TypeID
	sc         *aison.Schema
	name       string
	fields     []objectField[T]
	byName     map[string]int
	byOffset   map[uintptr]string
	violations *aison.Violations
	check      sync.Once
}

type objectField[T any] struct {
	name     string
	typ      aison.Type
	optional bool
	access   func(*T) any // returns *F for the declared field type F
}

// Object declares an object descriptor for T and registers it on the schema.
func Object[T any](sc *aison.Schema, name string) *ObjectType[T] {
	o := &ObjectType[T]{
		id:         aison.NewTypeID(),
		sc:         sc,
		name:       name,
		byName:     map[string]int{},
		byOffset:   map[uintptr]string{},
		violations: &aison.Violations{},
	}
	sc.Register(o)
	return o
}

// Field registers a field under the given key. access must return a pointer
// to the field inside its owner. A second registration of the same key or
// the same struct member keeps the first one; the schema policy decides
// whether that also panics.
func Field[T, F any](o *ObjectType[T], name string, ft aison.TypeOf[F], access func(*T) *F) *ObjectType[T] {
	if _, dup := o.byName[name]; dup {
		o.sc.Violation(o.violations, fmt.Sprintf("object %s: duplicate field %q", o.displayName(), name))
		return o
	}
	if off, ok := memberOffset(access); ok {
		if prev, dup := o.byOffset[off]; dup {
			o.sc.Violation(o.violations, fmt.Sprintf("object %s: field %q maps the same member as %q", o.displayName(), name, prev))
			return o
		}
		o.byOffset[off] = name
	}
	o.byName[name] = len(o.fields)
	o.fields = append(o.fields, objectField[T]{
		name:     name,
		typ:      ft,
		optional: ft.Kind() == aison.KindOptional,
		access:   func(p *T) any { return access(p) },
	})
	return o
}

// memberOffset locates the member inside T by probing a zero value.
// Accessors that point outside the owner (derived or shared state) are
// exempt from duplicate-member detection.
func memberOffset[T, F any](access func(*T) *F) (uintptr, bool) {
	probe := new(T)
	base := reflect.ValueOf(probe).Pointer()
	p := reflect.ValueOf(access(probe)).Pointer()
	size := reflect.TypeOf(probe).Elem().Size()
	if p < base || (size > 0 && p >= base+size) {
		return 0, false
	}
	return p - base, true
}

func (o *ObjectType[T]) displayName() string {
	if o.name != "" {
		return o.name
	}
	return fmt.Sprintf("#%d", o.id)
}

func (o *ObjectType[T]) Kind() aison.Kind     { return aison.KindObject }
func (o *ObjectType[T]) Name() string         { return o.name }
func (o *ObjectType[T]) TypeID() aison.TypeID { return o.id }

// Fields exposes the declared fields for introspection.
func (o *ObjectType[T]) Fields() []aison.FieldInfo {
	out := make([]aison.FieldInfo, 0, len(o.fields))
	for _, f := range o.fields {
		out = append(out, aison.FieldInfo{Name: f.name, Type: f.typ, Optional: f.optional})
	}
	return out
}

// validate runs the deferred schema-level checks once per descriptor.
func (o *ObjectType[T]) validate() {
	if o.sc.Introspection() && o.name == "" {
		o.sc.Violation(o.violations, fmt.Sprintf("object %s: introspection requires a name", o.displayName()))
	}
}

func (o *ObjectType[T]) EncodeValue(ec *aison.EncodeContext, src any, dst *node.Node) {
	o.check.Do(o.validate)
	ec.ReportViolations(o.violations)
	v := src.(*T)
	out := node.NewObject()
	for i := range o.fields {
		f := &o.fields[i]
		var child node.Node
		pop := ec.PushField(f.name)
		f.typ.EncodeValue(ec, f.access(v), &child)
		pop()
		if f.optional && child.IsNull() && !ec.Strict() {
			continue
		}
		out.Set(f.name, child)
	}
	*dst = out
}

func (o *ObjectType[T]) DecodeValue(dc *aison.DecodeContext, n node.Node, dst any) {
	o.check.Do(o.validate)
	dc.ReportViolations(o.violations)
	if n.Kind() != node.KindObject {
		dc.AddIssueHint(aison.CodeInvalidType, i18n.T(aison.CodeInvalidType, nil), "expected object, got "+n.Kind().String())
		return
	}
	v := dst.(*T)
	for i := range o.fields {
		f := &o.fields[i]
		child, ok := n.Get(f.name)
		if !ok {
			if f.optional && !dc.Strict() {
				pop := dc.PushField(f.name)
				f.typ.DecodeValue(dc, node.Null(), f.access(v))
				pop()
				continue
			}
			// missing keys are reported at the object's own path
			dc.AddIssueHint(aison.CodeRequired, i18n.T(aison.CodeRequired, nil), fmt.Sprintf("missing required field %q", f.name))
			continue
		}
		pop := dc.PushField(f.name)
		f.typ.DecodeValue(dc, child, f.access(v))
		pop()
	}
}
