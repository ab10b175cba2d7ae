package node

import "strconv"

// Kind tags a Node value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
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
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "invalid"
}

// Node is a JSON-like tree value. Object members keep insertion order.
// The zero Node is null. Copies of an array or object Node share storage,
// the same way Go slices and maps do.
type Node struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	arr  *arrayBody
	obj  *objectBody
}

type arrayBody struct{ elems []Node }

type objectBody struct {
	keys []string
	idx  map[string]int
	vals []Node
}

// Null returns the null Node.
func Null() Node { return Node{} }

// Bool returns a bool Node.
func Bool(b bool) Node { return Node{kind: KindBool, b: b} }

// Int returns a signed integer Node.
func Int(i int64) Node { return Node{kind: KindInt, i: i} }

// Uint returns an unsigned integer Node.
func Uint(u uint64) Node { return Node{kind: KindUint, u: u} }

// Float returns a float Node.
func Float(f float64) Node { return Node{kind: KindFloat, f: f} }

// String returns a string Node.
func String(s string) Node { return Node{kind: KindString, s: s} }

// NewArray returns an array Node holding the given elements.
func NewArray(elems ...Node) Node {
	return Node{kind: KindArray, arr: &arrayBody{elems: elems}}
}

// NewObject returns an empty object Node.
func NewObject() Node {
	return Node{kind: KindObject, obj: &objectBody{idx: map[string]int{}}}
}

func (n Node) Kind() Kind { return n.kind }

func (n Node) IsNull() bool { return n.kind == KindNull }

// Bool extracts a bool value; ok is false for any other kind.
func (n Node) Bool() (v bool, ok bool) {
	if n.kind != KindBool {
		return false, false
	}
	return n.b, true
}

// Int64 extracts a signed integer, widening from an unsigned Node when the
// value fits.
func (n Node) Int64() (v int64, ok bool) {
	switch n.kind {
	case KindInt:
		return n.i, true
	case KindUint:
		if n.u <= 1<<63-1 {
			return int64(n.u), true
		}
	}
	return 0, false
}

// Uint64 extracts an unsigned integer, widening from a non-negative signed
// Node.
func (n Node) Uint64() (v uint64, ok bool) {
	switch n.kind {
	case KindUint:
		return n.u, true
	case KindInt:
		if n.i >= 0 {
			return uint64(n.i), true
		}
	}
	return 0, false
}

// Float64 extracts a float, widening from either integer kind.
func (n Node) Float64() (v float64, ok bool) {
	switch n.kind {
	case KindFloat:
		return n.f, true
	case KindInt:
		return float64(n.i), true
	case KindUint:
		return float64(n.u), true
	}
	return 0, false
}

// Str extracts a string value; ok is false for any other kind.
func (n Node) Str() (v string, ok bool) {
	if n.kind != KindString {
		return "", false
	}
	return n.s, true
}

// Len reports the number of elements of an array or members of an object.
func (n Node) Len() int {
	switch n.kind {
	case KindArray:
		return len(n.arr.elems)
	case KindObject:
		return len(n.obj.keys)
	}
	return 0
}

// Index returns the i-th element of an array Node.
func (n Node) Index(i int) Node { return n.arr.elems[i] }

// Elems returns the backing element slice of an array Node.
func (n Node) Elems() []Node {
	if n.kind != KindArray {
		return nil
	}
	return n.arr.elems
}

// Append adds an element to an array Node. It panics on any other kind.
func (n Node) Append(v Node) {
	if n.kind != KindArray {
		panic("node: Append on " + n.kind.String())
	}
	n.arr.elems = append(n.arr.elems, v)
}

// Has reports whether an object Node has the given member.
func (n Node) Has(key string) bool {
	if n.kind != KindObject {
		return false
	}
	_, ok := n.obj.idx[key]
	return ok
}

// Get returns an object member by key.
func (n Node) Get(key string) (Node, bool) {
	if n.kind != KindObject {
		return Node{}, false
	}
	i, ok := n.obj.idx[key]
	if !ok {
		return Node{}, false
	}
	return n.obj.vals[i], true
}

// Set assigns an object member, appending the key on first assignment so
// member order follows insertion order. It panics on a non-object Node.
func (n Node) Set(key string, v Node) {
	if n.kind != KindObject {
		panic("node: Set on " + n.kind.String())
	}
	if i, ok := n.obj.idx[key]; ok {
		n.obj.vals[i] = v
		return
	}
	n.obj.idx[key] = len(n.obj.keys)
	n.obj.keys = append(n.obj.keys, key)
	n.obj.vals = append(n.obj.vals, v)
}

// Keys returns object member keys in insertion order.
func (n Node) Keys() []string {
	if n.kind != KindObject {
		return nil
	}
	return n.obj.keys
}

// Equal reports deep equality. Kinds must match exactly; there is no numeric
// cross-kind comparison.
func (n Node) Equal(m Node) bool {
	if n.kind != m.kind {
		return false
	}
	switch n.kind {
	case KindNull:
		return true
	case KindBool:
		return n.b == m.b
	case KindInt:
		return n.i == m.i
	case KindUint:
		return n.u == m.u
	case KindFloat:
		return n.f == m.f
	case KindString:
		return n.s == m.s
	case KindArray:
		if len(n.arr.elems) != len(m.arr.elems) {
			return false
		}
		for i := range n.arr.elems {
			if !n.arr.elems[i].Equal(m.arr.elems[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(n.obj.keys) != len(m.obj.keys) {
			return false
		}
		for i, k := range n.obj.keys {
			if m.obj.keys[i] != k {
				return false
			}
			if !n.obj.vals[i].Equal(m.obj.vals[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the Node as compact JSON, for debugging and tests.
func (n Node) String() string {
	b, err := n.MarshalJSON()
	if err != nil {
		return "<" + n.kind.String() + ":" + strconv.Quote(err.Error()) + ">"
	}
	return string(b)
}
