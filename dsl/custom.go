package dsl

import (
	"fmt"

	aison "github.com/gidapataki/aison-sub000"
	"github.com/gidapataki/aison-sub000/i18n"
	"github.com/gidapataki/aison-sub000/node"
)

// EncodeFunc is the user half of a Custom descriptor for the encode
// direction. It may add issues on the context and write any Node shape.
type EncodeFunc[T any] func(*aison.EncodeContext, *T, *node.Node)

// DecodeFunc is the user half for the decode direction.
type DecodeFunc[T any] func(*aison.DecodeContext, node.Node, *T)

type customType[T any] struct {
	aison.Base[T]
	id   aison.TypeID
	name string
	enc  EncodeFunc[T]
	dec  DecodeFunc[T]
}

// Custom declares a descriptor backed by a user-supplied codec pair and
// registers it on the schema. A panic inside either procedure is recovered
// and converted into a custom_panic issue at the current path; the rest of
// the traversal continues.
func Custom[T any](sc *aison.Schema, name string, enc EncodeFunc[T], dec DecodeFunc[T]) aison.TypeOf[T] {
	c := &customType[T]{id: aison.NewTypeID(), name: name, enc: enc, dec: dec}
	sc.Register(c)
	return c
}

func (c *customType[T]) Kind() aison.Kind     { return aison.KindCustom }
func (c *customType[T]) Name() string         { return c.name }
func (c *customType[T]) TypeID() aison.TypeID { return c.id }

func (c *customType[T]) EncodeValue(ec *aison.EncodeContext, src any, dst *node.Node) {
	defer func() {
		if r := recover(); r != nil {
			ec.AddIssueHint(aison.CodeCustomPanic, i18n.T(aison.CodeCustomPanic, nil), fmt.Sprintf("%s: %v", c.name, r))
		}
	}()
	c.enc(ec, src.(*T), dst)
}

func (c *customType[T]) DecodeValue(dc *aison.DecodeContext, n node.Node, dst any) {
	defer func() {
		if r := recover(); r != nil {
			dc.AddIssueHint(aison.CodeCustomPanic, i18n.T(aison.CodeCustomPanic, nil), fmt.Sprintf("%s: %v", c.name, r))
		}
	}()
	c.dec(dc, n, dst.(*T))
}
