package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gidapataki/aison-sub000/node"
)

func TestFromJSONPreservesMemberOrder(t *testing.T) {
	n, err := node.FromJSON([]byte(`{"z":1,"a":2,"m":3}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, n.Keys())
}

func TestFromJSONNumberKinds(t *testing.T) {
	n, err := node.FromJSON([]byte(`[1, -1, 18446744073709551615, 1.5, 1e100]`))
	require.NoError(t, err)
	require.Equal(t, 5, n.Len())
	assert.Equal(t, node.KindInt, n.Index(0).Kind())
	assert.Equal(t, node.KindInt, n.Index(1).Kind())
	assert.Equal(t, node.KindUint, n.Index(2).Kind())
	assert.Equal(t, node.KindFloat, n.Index(3).Kind())
	assert.Equal(t, node.KindFloat, n.Index(4).Kind())

	u, ok := n.Index(2).Uint64()
	require.True(t, ok)
	assert.Equal(t, uint64(18446744073709551615), u)
}

func TestFromJSONNested(t *testing.T) {
	n, err := node.FromJSON([]byte(`{"a":[{"b":"x"},null,true]}`))
	require.NoError(t, err)
	a, ok := n.Get("a")
	require.True(t, ok)
	require.Equal(t, 3, a.Len())
	b, ok := a.Index(0).Get("b")
	require.True(t, ok)
	s, _ := b.Str()
	assert.Equal(t, "x", s)
	assert.True(t, a.Index(1).IsNull())
}

func TestFromJSONRejectsTrailingData(t *testing.T) {
	_, err := node.FromJSON([]byte(`{} {}`))
	assert.Error(t, err)
}

func TestFromJSONRejectsMalformed(t *testing.T) {
	_, err := node.FromJSON([]byte(`{"a":`))
	assert.Error(t, err)
}

func TestMarshalJSONRoundTrip(t *testing.T) {
	in := []byte(`{"z":1,"a":[true,null,"x\n"],"m":{"k":-2.5}}`)
	n, err := node.FromJSON(in)
	require.NoError(t, err)

	out, err := n.MarshalJSON()
	require.NoError(t, err)

	back, err := node.FromJSON(out)
	require.NoError(t, err)
	assert.True(t, n.Equal(back), "got %s", out)
}

func TestMarshalJSONOrder(t *testing.T) {
	obj := node.NewObject()
	obj.Set("z", node.Int(1))
	obj.Set("a", node.Int(2))
	out, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":2}`, string(out))
}
