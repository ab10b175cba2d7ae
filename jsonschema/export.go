package jsonschema

import (
	"fmt"

	aison "github.com/gidapataki/aison-sub000"
)

// For projects a descriptor graph into a JSON Schema document. Named
// Object/Enum/Variant descriptors are emitted once under $defs and
// referenced everywhere else, which also keeps recursive schemas finite.
func For(t aison.Type) (*Schema, error) {
	ex := &exporter{
		defs:  map[string]*Schema{},
		named: map[aison.TypeID]string{},
	}
	root, err := ex.render(t)
	if err != nil {
		return nil, err
	}
	if len(ex.defs) > 0 {
		root.Defs = ex.defs
	}
	return root, nil
}

type exporter struct {
	defs  map[string]*Schema
	named map[aison.TypeID]string
}

func (ex *exporter) render(t aison.Type) (*Schema, error) {
	switch t.Kind() {
	case aison.KindBool:
		return &Schema{Type: "boolean"}, nil
	case aison.KindInt, aison.KindUint:
		return &Schema{Type: "integer", Format: t.Name()}, nil
	case aison.KindFloat:
		return &Schema{Type: "number", Format: t.Name()}, nil
	case aison.KindString:
		return &Schema{Type: "string"}, nil
	case aison.KindCustom:
		// opaque: the codec pair decides the shape at runtime
		return &Schema{}, nil
	case aison.KindOptional:
		inner, err := ex.render(t.(aison.ElemInfo).Elem())
		if err != nil {
			return nil, err
		}
		s := *inner
		s.Nullable = true
		return &s, nil
	case aison.KindSequence:
		inner, err := ex.render(t.(aison.ElemInfo).Elem())
		if err != nil {
			return nil, err
		}
		return &Schema{Type: "array", Items: inner}, nil
	case aison.KindEnum:
		return ex.renderNamed(t, ex.renderEnum)
	case aison.KindObject:
		return ex.renderNamed(t, ex.renderObject)
	case aison.KindVariant:
		return ex.renderNamed(t, ex.renderVariant)
	}
	return nil, fmt.Errorf("jsonschema: cannot render kind %s", t.Kind())
}

// renderNamed routes a named descriptor through $defs; unnamed ones are
// rendered inline.
func (ex *exporter) renderNamed(t aison.Type, body func(aison.Type) (*Schema, error)) (*Schema, error) {
	name := t.Name()
	if name == "" {
		return body(t)
	}
	if _, seen := ex.named[t.TypeID()]; !seen {
		ex.named[t.TypeID()] = name
		ex.defs[name] = &Schema{} // placeholder breaks cycles
		s, err := body(t)
		if err != nil {
			return nil, err
		}
		*ex.defs[name] = *s
	}
	return &Schema{Ref: "#/$defs/" + name}, nil
}

func (ex *exporter) renderEnum(t aison.Type) (*Schema, error) {
	info := t.(aison.EnumInfo)
	s := &Schema{Type: "string"}
	for _, e := range info.Entries() {
		s.Enum = append(s.Enum, e.Name)
	}
	return s, nil
}

func (ex *exporter) renderObject(t aison.Type) (*Schema, error) {
	info := t.(aison.ObjectInfo)
	s := &Schema{Type: "object", Properties: map[string]*Schema{}}
	for _, f := range info.Fields() {
		fs, err := ex.render(f.Type)
		if err != nil {
			return nil, err
		}
		s.Properties[f.Name] = fs
		if !f.Optional {
			s.Required = append(s.Required, f.Name)
		}
	}
	return s, nil
}

func (ex *exporter) renderVariant(t aison.Type) (*Schema, error) {
	info := t.(aison.VariantInfo)
	s := &Schema{Discriminator: info.Discriminator()}
	for _, alt := range info.Alternatives() {
		as, err := ex.render(alt.Object)
		if err != nil {
			return nil, err
		}
		s.OneOf = append(s.OneOf, as)
	}
	return s, nil
}
