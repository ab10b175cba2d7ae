package aison

import "fmt"

// Snapshot is the serializable projection of a reachable descriptor graph.
// External tools (doc generators, client-binding generators, validators) can
// consume it without re-deriving the schema from source.
type Snapshot struct {
	Objects  map[string]ObjectMeta  `json:"objects"`
	Enums    map[string]EnumMeta    `json:"enums"`
	Variants map[string]VariantMeta `json:"variants"`
	Issues   Issues                 `json:"issues,omitempty"`
}

// ObjectMeta is the snapshot entry for one object descriptor.
type ObjectMeta struct {
	Name   string      `json:"name"`
	Fields []FieldMeta `json:"fields"`
}

// FieldMeta describes one field; Type is a short reference (see TypeRef).
type FieldMeta struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Optional bool   `json:"optional,omitempty"`
}

// EnumMeta is the snapshot entry for one enum descriptor.
type EnumMeta struct {
	Name    string      `json:"name"`
	Values  []EnumEntry `json:"values"`
	Aliases []EnumEntry `json:"aliases,omitempty"`
}

// VariantMeta is the snapshot entry for one variant descriptor.
type VariantMeta struct {
	Name          string            `json:"name"`
	Discriminator string            `json:"discriminator"`
	Alternatives  []AlternativeMeta `json:"alternatives"`
}

// AlternativeMeta names one tagged alternative of a variant.
type AlternativeMeta struct {
	Tag    string `json:"tag"`
	Object string `json:"object"`
}

// Introspect walks the descriptor graph reachable from the given roots and
// returns its metadata closure. Optional and Sequence wrappers unwrap
// transparently; an unnamed Object/Enum/Variant produces a missing_name
// issue and that branch stops expanding.
func Introspect(roots ...Type) Snapshot {
	w := &walker{
		snap: Snapshot{
			Objects:  map[string]ObjectMeta{},
			Enums:    map[string]EnumMeta{},
			Variants: map[string]VariantMeta{},
		},
		seen: map[TypeID]struct{}{},
	}
	for _, r := range roots {
		w.collect(r)
	}
	return w.snap
}

// IntrospectAll walks every descriptor registered on the schema.
func (s *Schema) IntrospectAll() Snapshot {
	return Introspect(s.Registered()...)
}

type walker struct {
	snap Snapshot
	seen map[TypeID]struct{}
}

func (w *walker) collect(t Type) {
	if t == nil {
		return
	}
	if info, ok := t.(ElemInfo); ok {
		w.collect(info.Elem())
		return
	}
	if _, done := w.seen[t.TypeID()]; done {
		return
	}
	w.seen[t.TypeID()] = struct{}{}

	switch info := t.(type) {
	case ObjectInfo:
		if !w.requireName(t, "object") {
			return
		}
		meta := ObjectMeta{Name: t.Name()}
		for _, f := range info.Fields() {
			meta.Fields = append(meta.Fields, FieldMeta{Name: f.Name, Type: TypeRef(f.Type), Optional: f.Optional})
		}
		w.snap.Objects[t.Name()] = meta
		for _, f := range info.Fields() {
			w.collect(f.Type)
		}
	case EnumInfo:
		if !w.requireName(t, "enum") {
			return
		}
		w.snap.Enums[t.Name()] = EnumMeta{Name: t.Name(), Values: info.Entries(), Aliases: info.Aliases()}
	case VariantInfo:
		if !w.requireName(t, "variant") {
			return
		}
		meta := VariantMeta{Name: t.Name(), Discriminator: info.Discriminator()}
		for _, alt := range info.Alternatives() {
			meta.Alternatives = append(meta.Alternatives, AlternativeMeta{Tag: alt.Tag, Object: alt.Object.Name()})
		}
		w.snap.Variants[t.Name()] = meta
		for _, alt := range info.Alternatives() {
			w.collect(alt.Object)
		}
	}
	// scalars and custom descriptors carry no structural metadata
}

func (w *walker) requireName(t Type, what string) bool {
	if t.Name() != "" {
		return true
	}
	w.snap.Issues = AppendIssues(w.snap.Issues, Issue{
		Path:    fmt.Sprintf("#%d", t.TypeID()),
		Code:    CodeMissingName,
		Message: fmt.Sprintf("#%d: %s descriptor must have a name", t.TypeID(), what),
	})
	return false
}

// TypeRef renders a short reference for a descriptor: the display name when
// present, the kind otherwise. Optional renders as "inner?", Sequence as
// "[]inner".
func TypeRef(t Type) string {
	if info, ok := t.(ElemInfo); ok {
		if t.Kind() == KindOptional {
			return TypeRef(info.Elem()) + "?"
		}
		return "[]" + TypeRef(info.Elem())
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.Kind().String()
}
