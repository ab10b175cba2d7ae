package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gidapataki/aison-sub000/node"
)

func TestZeroNodeIsNull(t *testing.T) {
	var n node.Node
	assert.Equal(t, node.KindNull, n.Kind())
	assert.True(t, n.IsNull())
}

func TestScalarKinds(t *testing.T) {
	b, ok := node.Bool(true).Bool()
	require.True(t, ok)
	assert.True(t, b)

	i, ok := node.Int(-7).Int64()
	require.True(t, ok)
	assert.Equal(t, int64(-7), i)

	u, ok := node.Uint(7).Uint64()
	require.True(t, ok)
	assert.Equal(t, uint64(7), u)

	f, ok := node.Float(1.5).Float64()
	require.True(t, ok)
	assert.Equal(t, 1.5, f)

	s, ok := node.String("hi").Str()
	require.True(t, ok)
	assert.Equal(t, "hi", s)

	_, ok = node.String("hi").Bool()
	assert.False(t, ok)
}

func TestNumericWidening(t *testing.T) {
	// uint fits int64
	i, ok := node.Uint(42).Int64()
	require.True(t, ok)
	assert.Equal(t, int64(42), i)

	// uint too large for int64
	_, ok = node.Uint(1 << 63).Int64()
	assert.False(t, ok)

	// non-negative int widens to uint64
	u, ok := node.Int(42).Uint64()
	require.True(t, ok)
	assert.Equal(t, uint64(42), u)

	_, ok = node.Int(-1).Uint64()
	assert.False(t, ok)

	// both integer kinds widen to float64
	f, ok := node.Int(3).Float64()
	require.True(t, ok)
	assert.Equal(t, 3.0, f)
	f, ok = node.Uint(4).Float64()
	require.True(t, ok)
	assert.Equal(t, 4.0, f)
}

func TestObjectInsertionOrder(t *testing.T) {
	obj := node.NewObject()
	obj.Set("z", node.Int(1))
	obj.Set("a", node.Int(2))
	obj.Set("m", node.Int(3))
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())

	// overwriting keeps the original position
	obj.Set("a", node.Int(9))
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())
	v, ok := obj.Get("a")
	require.True(t, ok)
	i, _ := v.Int64()
	assert.Equal(t, int64(9), i)

	assert.True(t, obj.Has("z"))
	assert.False(t, obj.Has("q"))
	assert.Equal(t, 3, obj.Len())
}

func TestArrayAppend(t *testing.T) {
	arr := node.NewArray()
	arr.Append(node.Int(1))
	arr.Append(node.String("two"))
	require.Equal(t, 2, arr.Len())
	i, _ := arr.Index(0).Int64()
	assert.Equal(t, int64(1), i)
	s, _ := arr.Index(1).Str()
	assert.Equal(t, "two", s)
}

func TestEqual(t *testing.T) {
	a := node.NewObject()
	a.Set("x", node.NewArray(node.Int(1), node.Null()))
	a.Set("y", node.Bool(true))

	b := node.NewObject()
	b.Set("x", node.NewArray(node.Int(1), node.Null()))
	b.Set("y", node.Bool(true))

	assert.True(t, a.Equal(b))

	// member order matters
	c := node.NewObject()
	c.Set("y", node.Bool(true))
	c.Set("x", node.NewArray(node.Int(1), node.Null()))
	assert.False(t, a.Equal(c))

	// kinds do not cross-compare
	assert.False(t, node.Int(1).Equal(node.Uint(1)))
}
