package dsl

import (
	"math"

	aison "github.com/gidapataki/aison-sub000"
	"github.com/gidapataki/aison-sub000/i18n"
	"github.com/gidapataki/aison-sub000/node"
	"golang.org/x/exp/constraints"
)

// ---------------- bool ----------------

type boolType[T ~bool] struct {
	aison.Base[T]
	id aison.TypeID
}

func (t *boolType[T]) Kind() aison.Kind     { return aison.KindBool }
func (t *boolType[T]) Name() string         { return "bool" }
func (t *boolType[T]) TypeID() aison.TypeID { return t.id }

func (t *boolType[T]) EncodeValue(ec *aison.EncodeContext, src any, dst *node.Node) {
	*dst = node.Bool(bool(*(src.(*T))))
}

func (t *boolType[T]) DecodeValue(dc *aison.DecodeContext, n node.Node, dst any) {
	b, ok := n.Bool()
	if !ok {
		dc.AddIssueHint(aison.CodeInvalidType, i18n.T(aison.CodeInvalidType, nil), "expected bool, got "+n.Kind().String())
		return
	}
	*(dst.(*T)) = T(b)
}

// Bool returns the bool descriptor.
func Bool() aison.TypeOf[bool] { return BoolOf[bool]() }

// BoolOf returns a bool descriptor projected to domain type T.
func BoolOf[T ~bool]() aison.TypeOf[T] {
	return &boolType[T]{id: aison.NewTypeID()}
}

// ---------------- string ----------------

type stringType[T ~string] struct {
	aison.Base[T]
	id aison.TypeID
}

func (t *stringType[T]) Kind() aison.Kind     { return aison.KindString }
func (t *stringType[T]) Name() string         { return "string" }
func (t *stringType[T]) TypeID() aison.TypeID { return t.id }

func (t *stringType[T]) EncodeValue(ec *aison.EncodeContext, src any, dst *node.Node) {
	*dst = node.String(string(*(src.(*T))))
}

func (t *stringType[T]) DecodeValue(dc *aison.DecodeContext, n node.Node, dst any) {
	s, ok := n.Str()
	if !ok {
		dc.AddIssueHint(aison.CodeInvalidType, i18n.T(aison.CodeInvalidType, nil), "expected string, got "+n.Kind().String())
		return
	}
	*(dst.(*T)) = T(s)
}

// String returns the string descriptor.
func String() aison.TypeOf[string] { return StringOf[string]() }

// StringOf returns a string descriptor projected to domain type T.
func StringOf[T ~string]() aison.TypeOf[T] {
	return &stringType[T]{id: aison.NewTypeID()}
}

// ---------------- signed integers ----------------

type intType[T constraints.Signed] struct {
	aison.Base[T]
	id   aison.TypeID
	name string
	bits int
}

func (t *intType[T]) Kind() aison.Kind     { return aison.KindInt }
func (t *intType[T]) Name() string         { return t.name }
func (t *intType[T]) TypeID() aison.TypeID { return t.id }

func (t *intType[T]) EncodeValue(ec *aison.EncodeContext, src any, dst *node.Node) {
	*dst = node.Int(int64(*(src.(*T))))
}

func (t *intType[T]) DecodeValue(dc *aison.DecodeContext, n node.Node, dst any) {
	i, ok := n.Int64()
	if !ok {
		dc.AddIssueHint(aison.CodeInvalidType, i18n.T(aison.CodeInvalidType, nil), "expected integer, got "+n.Kind().String())
		return
	}
	if t.bits < 64 {
		min := -(int64(1) << (t.bits - 1))
		max := int64(1)<<(t.bits-1) - 1
		if i < min || i > max {
			dc.AddIssueHint(aison.CodeOverflow, i18n.T(aison.CodeOverflow, nil), t.name+" overflow")
			return
		}
	}
	*(dst.(*T)) = T(i)
}

func newIntType[T constraints.Signed](name string, bits int) aison.TypeOf[T] {
	return &intType[T]{id: aison.NewTypeID(), name: name, bits: bits}
}

// Int returns the descriptor for the platform int, decoded with 64-bit range.
func Int() aison.TypeOf[int] { return IntOf[int]() }

// Int64 returns the int64 descriptor.
func Int64() aison.TypeOf[int64] { return Int64Of[int64]() }

// IntOf returns an int descriptor projected to domain type T.
func IntOf[T ~int]() aison.TypeOf[T] { return newIntType[T]("int", 64) }

// Int64Of returns an int64 descriptor projected to domain type T.
func Int64Of[T ~int64]() aison.TypeOf[T] { return newIntType[T]("int64", 64) }

// Int32Of returns an int32 descriptor projected to domain type T.
func Int32Of[T ~int32]() aison.TypeOf[T] { return newIntType[T]("int32", 32) }

// Int16Of returns an int16 descriptor projected to domain type T.
func Int16Of[T ~int16]() aison.TypeOf[T] { return newIntType[T]("int16", 16) }

// Int8Of returns an int8 descriptor projected to domain type T.
func Int8Of[T ~int8]() aison.TypeOf[T] { return newIntType[T]("int8", 8) }

// ---------------- unsigned integers ----------------

type uintType[T constraints.Unsigned] struct {
	aison.Base[T]
	id   aison.TypeID
	name string
	bits int
}

func (t *uintType[T]) Kind() aison.Kind     { return aison.KindUint }
func (t *uintType[T]) Name() string         { return t.name }
func (t *uintType[T]) TypeID() aison.TypeID { return t.id }

func (t *uintType[T]) EncodeValue(ec *aison.EncodeContext, src any, dst *node.Node) {
	*dst = node.Uint(uint64(*(src.(*T))))
}

func (t *uintType[T]) DecodeValue(dc *aison.DecodeContext, n node.Node, dst any) {
	u, ok := n.Uint64()
	if !ok {
		dc.AddIssueHint(aison.CodeInvalidType, i18n.T(aison.CodeInvalidType, nil), "expected unsigned integer, got "+n.Kind().String())
		return
	}
	if t.bits < 64 && u > uint64(1)<<t.bits-1 {
		dc.AddIssueHint(aison.CodeOverflow, i18n.T(aison.CodeOverflow, nil), t.name+" overflow")
		return
	}
	*(dst.(*T)) = T(u)
}

func newUintType[T constraints.Unsigned](name string, bits int) aison.TypeOf[T] {
	return &uintType[T]{id: aison.NewTypeID(), name: name, bits: bits}
}

// Uint returns the descriptor for the platform uint, decoded with 64-bit range.
func Uint() aison.TypeOf[uint] { return UintOf[uint]() }

// Uint64 returns the uint64 descriptor.
func Uint64() aison.TypeOf[uint64] { return Uint64Of[uint64]() }

// UintOf returns a uint descriptor projected to domain type T.
func UintOf[T ~uint]() aison.TypeOf[T] { return newUintType[T]("uint", 64) }

// Uint64Of returns a uint64 descriptor projected to domain type T.
func Uint64Of[T ~uint64]() aison.TypeOf[T] { return newUintType[T]("uint64", 64) }

// Uint32Of returns a uint32 descriptor projected to domain type T.
func Uint32Of[T ~uint32]() aison.TypeOf[T] { return newUintType[T]("uint32", 32) }

// Uint16Of returns a uint16 descriptor projected to domain type T.
func Uint16Of[T ~uint16]() aison.TypeOf[T] { return newUintType[T]("uint16", 16) }

// Uint8Of returns a uint8 descriptor projected to domain type T.
func Uint8Of[T ~uint8]() aison.TypeOf[T] { return newUintType[T]("uint8", 8) }

// ---------------- floats ----------------

type floatType[T constraints.Float] struct {
	aison.Base[T]
	id   aison.TypeID
	name string
	bits int
}

func (t *floatType[T]) Kind() aison.Kind     { return aison.KindFloat }
func (t *floatType[T]) Name() string         { return t.name }
func (t *floatType[T]) TypeID() aison.TypeID { return t.id }

// EncodeValue rejects NaN and ±Inf: the tree format has no representation
// for non-finite numbers, so nothing is written and an issue is recorded.
func (t *floatType[T]) EncodeValue(ec *aison.EncodeContext, src any, dst *node.Node) {
	f := float64(*(src.(*T)))
	if math.IsNaN(f) || math.IsInf(f, 0) {
		ec.AddIssue(aison.CodeNotFinite, i18n.T(aison.CodeNotFinite, nil))
		return
	}
	*dst = node.Float(f)
}

func (t *floatType[T]) DecodeValue(dc *aison.DecodeContext, n node.Node, dst any) {
	f, ok := n.Float64()
	if !ok {
		dc.AddIssueHint(aison.CodeInvalidType, i18n.T(aison.CodeInvalidType, nil), "expected number, got "+n.Kind().String())
		return
	}
	if t.bits == 32 && (f > math.MaxFloat32 || f < -math.MaxFloat32) {
		dc.AddIssueHint(aison.CodeOverflow, i18n.T(aison.CodeOverflow, nil), "float32 overflow")
		return
	}
	*(dst.(*T)) = T(f)
}

// Float64 returns the float64 descriptor.
func Float64() aison.TypeOf[float64] { return Float64Of[float64]() }

// Float64Of returns a float64 descriptor projected to domain type T.
func Float64Of[T ~float64]() aison.TypeOf[T] {
	return &floatType[T]{id: aison.NewTypeID(), name: "float64", bits: 64}
}

// Float32Of returns a float32 descriptor projected to domain type T.
func Float32Of[T ~float32]() aison.TypeOf[T] {
	return &floatType[T]{id: aison.NewTypeID(), name: "float32", bits: 32}
}
