package aison

import "github.com/gidapataki/aison-sub000/node"

// Encode converts v into a Node under the descriptor t. Output is
// best-effort: a Node is always produced, and the returned Issues report
// everything that went wrong along the way (empty on success).
func Encode[T any](s *Schema, t TypeOf[T], v T) (node.Node, Issues) {
	return EncodeWith(s, t, v, nil)
}

// EncodeWith is Encode with a caller config value threaded through the
// context, reachable from Custom codecs via EncodeContext.Config.
func EncodeWith[T any](s *Schema, t TypeOf[T], v T, config any) (node.Node, Issues) {
	ec := &EncodeContext{callState{schema: s, config: config}}
	var n node.Node
	t.EncodeValue(ec, &v, &n)
	return n, ec.issues
}

// Decode converts n into a value of the descriptor's Go type. Like Encode it
// never stops at the first failure: the result may be partially populated
// when Issues is non-empty.
func Decode[T any](s *Schema, t TypeOf[T], n node.Node) (T, Issues) {
	return DecodeWith[T](s, t, n, nil)
}

// DecodeWith is Decode with a caller config value.
func DecodeWith[T any](s *Schema, t TypeOf[T], n node.Node, config any) (T, Issues) {
	var v T
	iss := DecodeIntoWith(s, t, n, &v, config)
	return v, iss
}

// DecodeInto decodes n into an existing value. Fields that fail their shape
// check keep their prior contents.
func DecodeInto[T any](s *Schema, t TypeOf[T], n node.Node, dst *T) Issues {
	return DecodeIntoWith(s, t, n, dst, nil)
}

// DecodeIntoWith is DecodeInto with a caller config value.
func DecodeIntoWith[T any](s *Schema, t TypeOf[T], n node.Node, dst *T, config any) Issues {
	dc := &DecodeContext{callState{schema: s, config: config}}
	t.DecodeValue(dc, n, dst)
	return dc.issues
}
