package node

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FromYAML decodes the first document of a YAML input into a Node, preserving
// mapping key order.
func FromYAML(data []byte) (Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Node{}, err
	}
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return Null(), nil
		}
		return fromYAMLNode(doc.Content[0])
	}
	return fromYAMLNode(&doc)
}

func fromYAMLNode(y *yaml.Node) (Node, error) {
	switch y.Kind {
	case yaml.AliasNode:
		return fromYAMLNode(y.Alias)
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(y.Content); i += 2 {
			k := y.Content[i]
			if k.Kind != yaml.ScalarNode {
				return Node{}, fmt.Errorf("node: non-scalar YAML mapping key at line %d", k.Line)
			}
			v, err := fromYAMLNode(y.Content[i+1])
			if err != nil {
				return Node{}, err
			}
			obj.Set(k.Value, v)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := NewArray()
		for _, c := range y.Content {
			v, err := fromYAMLNode(c)
			if err != nil {
				return Node{}, err
			}
			arr.Append(v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return fromYAMLScalar(y)
	}
	return Null(), nil
}

func fromYAMLScalar(y *yaml.Node) (Node, error) {
	switch y.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := y.Decode(&b); err != nil {
			return Node{}, err
		}
		return Bool(b), nil
	case "!!int":
		if i, err := strconv.ParseInt(y.Value, 0, 64); err == nil {
			return Int(i), nil
		}
		u, err := strconv.ParseUint(y.Value, 0, 64)
		if err != nil {
			return Node{}, err
		}
		return Uint(u), nil
	case "!!float":
		f, err := strconv.ParseFloat(y.Value, 64)
		if err != nil {
			return Node{}, err
		}
		return Float(f), nil
	}
	return String(y.Value), nil
}

// MarshalYAML implements yaml.Marshaler so Nodes round-trip through
// yaml.Marshal with member order intact.
func (n Node) MarshalYAML() (any, error) {
	return n.toYAMLNode(), nil
}

func (n Node) toYAMLNode() *yaml.Node {
	switch n.kind {
	case KindBool:
		return yamlScalar("!!bool", strconv.FormatBool(n.b))
	case KindInt:
		return yamlScalar("!!int", strconv.FormatInt(n.i, 10))
	case KindUint:
		return yamlScalar("!!int", strconv.FormatUint(n.u, 10))
	case KindFloat:
		return yamlScalar("!!float", strconv.FormatFloat(n.f, 'g', -1, 64))
	case KindString:
		return yamlScalar("!!str", n.s)
	case KindArray:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, el := range n.arr.elems {
			out.Content = append(out.Content, el.toYAMLNode())
		}
		return out
	case KindObject:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, k := range n.obj.keys {
			out.Content = append(out.Content, yamlScalar("!!str", k), n.obj.vals[i].toYAMLNode())
		}
		return out
	}
	return yamlScalar("!!null", "null")
}

func yamlScalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
