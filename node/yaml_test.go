package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gidapataki/aison-sub000/node"
)

func TestFromYAMLPreservesMappingOrder(t *testing.T) {
	n, err := node.FromYAML([]byte("z: 1\na: 2\nm: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, n.Keys())
}

func TestFromYAMLScalarKinds(t *testing.T) {
	n, err := node.FromYAML([]byte(`
flag: true
count: -7
big: 18446744073709551615
ratio: 1.5
name: hello
nothing: null
`))
	require.NoError(t, err)

	get := func(k string) node.Node {
		v, ok := n.Get(k)
		require.True(t, ok, k)
		return v
	}
	assert.Equal(t, node.KindBool, get("flag").Kind())
	assert.Equal(t, node.KindInt, get("count").Kind())
	assert.Equal(t, node.KindUint, get("big").Kind())
	assert.Equal(t, node.KindFloat, get("ratio").Kind())
	assert.Equal(t, node.KindString, get("name").Kind())
	assert.True(t, get("nothing").IsNull())
}

func TestFromYAMLAliases(t *testing.T) {
	n, err := node.FromYAML([]byte(`
base: &b
  x: 1
copy: *b
`))
	require.NoError(t, err)
	cp, ok := n.Get("copy")
	require.True(t, ok)
	x, ok := cp.Get("x")
	require.True(t, ok)
	i, _ := x.Int64()
	assert.Equal(t, int64(1), i)
}

func TestYAMLRoundTrip(t *testing.T) {
	in := node.NewObject()
	in.Set("z", node.Int(1))
	in.Set("a", node.NewArray(node.Bool(true), node.Null(), node.String("x")))
	inner := node.NewObject()
	inner.Set("k", node.Float(-2.5))
	in.Set("m", inner)

	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	back, err := node.FromYAML(data)
	require.NoError(t, err)
	assert.True(t, in.Equal(back), "got %s", data)
}
