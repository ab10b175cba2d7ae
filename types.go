package aison

import (
	"sync/atomic"

	"github.com/gidapataki/aison-sub000/node"
)

// Kind classifies a descriptor.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindUint
	KindFloat
	KindString
	KindEnum
	KindObject
	KindCustom
	KindOptional
	KindSequence
	KindVariant
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	case KindCustom:
		return "custom"
	case KindOptional:
		return "optional"
	case KindSequence:
		return "sequence"
	case KindVariant:
		return "variant"
	}
	return "invalid"
}

// TypeID is a process-stable identity token for a descriptor.
type TypeID int64

var typeIDs atomic.Int64

// NewTypeID issues the next descriptor identity. Exported for the dsl
// subpackage; applications have no reason to call it.
func NewTypeID() TypeID { return TypeID(typeIDs.Add(1)) }

// Type is the runtime descriptor for one mapped Go type. Classification is
// fixed once the descriptor is built; descriptors are never mutated after
// first use.
type Type interface {
	Kind() Kind
	// Name is the display name. Scalars report their width name ("int32");
	// wrappers report ""; Object/Enum/Variant report their declared name.
	Name() string
	TypeID() TypeID
	// EncodeValue writes the value behind src (a *T) into dst. Failures are
	// recorded on ec; dst is always left in some valid state.
	EncodeValue(ec *EncodeContext, src any, dst *node.Node)
	// DecodeValue reads n into the value behind dst (a *T). On a shape
	// mismatch the destination keeps its prior value.
	DecodeValue(dc *DecodeContext, n node.Node, dst any)
}

// TypeOf is a Type whose mapped Go type is statically known.
type TypeOf[T any] interface {
	Type
	aisonType(*T)
}

// Base binds a descriptor implementation to its mapped Go type T. Descriptor
// implementations embed it to satisfy TypeOf[T].
type Base[T any] struct{}

func (Base[T]) aisonType(*T) {}

// FieldInfo describes one object field for introspection.
type FieldInfo struct {
	Name     string
	Type     Type
	Optional bool
}

// EnumEntry is one (name, value) pair of an enum table.
type EnumEntry struct {
	Name  string
	Value int64
}

// Alternative is one tagged alternative of a variant.
type Alternative struct {
	Tag    string
	Object Type
}

// ObjectInfo is implemented by object descriptors.
type ObjectInfo interface {
	Type
	Fields() []FieldInfo
}

// EnumInfo is implemented by enum descriptors. Aliases are decode-only.
type EnumInfo interface {
	Type
	Entries() []EnumEntry
	Aliases() []EnumEntry
}

// VariantInfo is implemented by variant descriptors. Alternatives keep
// declaration order; decode resolves the first tag match.
type VariantInfo interface {
	Type
	Discriminator() string
	Alternatives() []Alternative
}

// ElemInfo is implemented by Optional and Sequence descriptors.
type ElemInfo interface {
	Type
	Elem() Type
}
