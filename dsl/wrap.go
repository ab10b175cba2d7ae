package dsl

import (
	aison "github.com/gidapataki/aison-sub000"
	"github.com/gidapataki/aison-sub000/i18n"
	"github.com/gidapataki/aison-sub000/node"
)

// optionalType wraps an element descriptor; nil maps to Node-null and a
// present value encodes in place, without a wrapper Node.
type optionalType[T any] struct {
	aison.Base[*T]
	id   aison.TypeID
	elem aison.TypeOf[T]
}

// Optional wraps elem so that *T(nil) round-trips as null. Object fields of
// an Optional type are the nullable fields of §strict-optional handling.
func Optional[T any](elem aison.TypeOf[T]) aison.TypeOf[*T] {
	return &optionalType[T]{id: aison.NewTypeID(), elem: elem}
}

func (t *optionalType[T]) Kind() aison.Kind     { return aison.KindOptional }
func (t *optionalType[T]) Name() string         { return "" }
func (t *optionalType[T]) TypeID() aison.TypeID { return t.id }
func (t *optionalType[T]) Elem() aison.Type     { return t.elem }

func (t *optionalType[T]) EncodeValue(ec *aison.EncodeContext, src any, dst *node.Node) {
	p := *(src.(**T))
	if p == nil {
		*dst = node.Null()
		return
	}
	t.elem.EncodeValue(ec, p, dst)
}

func (t *optionalType[T]) DecodeValue(dc *aison.DecodeContext, n node.Node, dst any) {
	out := dst.(**T)
	if n.IsNull() {
		*out = nil
		return
	}
	p := new(T)
	t.elem.DecodeValue(dc, n, p)
	*out = p
}

// sliceType maps []T to a Node array, preserving element order.
type sliceType[T any] struct {
	aison.Base[[]T]
	id   aison.TypeID
	elem aison.TypeOf[T]
}

// Slice returns the []T descriptor for an element descriptor.
func Slice[T any](elem aison.TypeOf[T]) aison.TypeOf[[]T] {
	return &sliceType[T]{id: aison.NewTypeID(), elem: elem}
}

func (t *sliceType[T]) Kind() aison.Kind     { return aison.KindSequence }
func (t *sliceType[T]) Name() string         { return "" }
func (t *sliceType[T]) TypeID() aison.TypeID { return t.id }
func (t *sliceType[T]) Elem() aison.Type     { return t.elem }

func (t *sliceType[T]) EncodeValue(ec *aison.EncodeContext, src any, dst *node.Node) {
	s := *(src.(*[]T))
	arr := node.NewArray()
	for i := range s {
		var child node.Node
		pop := ec.PushIndex(i)
		t.elem.EncodeValue(ec, &s[i], &child)
		pop()
		arr.Append(child)
	}
	*dst = arr
}

// DecodeValue attempts every element; one element's failure does not stop
// the rest.
func (t *sliceType[T]) DecodeValue(dc *aison.DecodeContext, n node.Node, dst any) {
	if n.Kind() != node.KindArray {
		dc.AddIssueHint(aison.CodeInvalidType, i18n.T(aison.CodeInvalidType, nil), "expected array, got "+n.Kind().String())
		return
	}
	out := make([]T, n.Len())
	for i := 0; i < n.Len(); i++ {
		pop := dc.PushIndex(i)
		t.elem.DecodeValue(dc, n.Index(i), &out[i])
		pop()
	}
	*(dst.(*[]T)) = out
}
