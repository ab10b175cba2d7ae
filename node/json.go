package node

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	j "github.com/goccy/go-json"
)

// FromJSON parses a single JSON value into a Node, preserving object member
// order. Numbers are decoded as Int when they fit int64, Uint when they fit
// uint64, and Float otherwise.
func FromJSON(data []byte) (Node, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	n, err := readValue(dec)
	if err != nil {
		return Node{}, err
	}
	if dec.More() {
		return Node{}, errors.New("node: trailing data after JSON value")
	}
	return n, nil
}

func readValue(dec *j.Decoder) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return Node{}, err
	}
	return readToken(dec, tok)
}

func readToken(dec *j.Decoder, tok j.Token) (Node, error) {
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			obj := NewObject()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return Node{}, err
				}
				key, ok := kt.(string)
				if !ok {
					return Node{}, fmt.Errorf("node: object key is %T, not string", kt)
				}
				val, err := readValue(dec)
				if err != nil {
					return Node{}, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Node{}, err
			}
			return obj, nil
		case '[':
			arr := NewArray()
			for dec.More() {
				el, err := readValue(dec)
				if err != nil {
					return Node{}, err
				}
				arr.Append(el)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Node{}, err
			}
			return arr, nil
		}
		return Node{}, fmt.Errorf("node: unexpected delimiter %q", v.String())
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case j.Number:
		return numberNode(string(v)), nil
	case float64:
		return Float(v), nil
	case nil:
		return Null(), nil
	}
	return Node{}, fmt.Errorf("node: unexpected token %T", tok)
}

func numberNode(s string) Node {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return Uint(u)
	}
	f, _ := strconv.ParseFloat(s, 64)
	return Float(f)
}

// MarshalJSON renders the Node as compact JSON with object members in
// insertion order.
func (n Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n Node) appendJSON(buf *bytes.Buffer) error {
	switch n.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(n.b))
	case KindInt:
		buf.WriteString(strconv.FormatInt(n.i, 10))
	case KindUint:
		buf.WriteString(strconv.FormatUint(n.u, 10))
	case KindFloat:
		buf.WriteString(strconv.FormatFloat(n.f, 'g', -1, 64))
	case KindString:
		b, err := j.Marshal(n.s)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindArray:
		buf.WriteByte('[')
		for i, el := range n.arr.elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := el.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, k := range n.obj.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := j.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err := n.obj.vals[i].appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
