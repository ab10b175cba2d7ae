package jsonschema_test

import (
	"testing"

	aison "github.com/gidapataki/aison-sub000"
	"github.com/gidapataki/aison-sub000/dsl"
	"github.com/gidapataki/aison-sub000/jsonschema"
)

type label int32

type entry struct {
	Title string
	Tag   label
	Note  *string
}

type folder struct {
	Name    string
	Entries []entry
}

func folderSchema() (*aison.Schema, aison.TypeOf[folder]) {
	sc := aison.New()
	lab := dsl.Enum[label](sc, "Label").Value(0, "todo").Value(1, "done")

	ent := dsl.Object[entry](sc, "Entry")
	dsl.Field(ent, "title", dsl.String(), func(p *entry) *string { return &p.Title })
	dsl.Field(ent, "tag", lab, func(p *entry) *label { return &p.Tag })
	dsl.Field(ent, "note", dsl.Optional(dsl.String()), func(p *entry) **string { return &p.Note })

	fol := dsl.Object[folder](sc, "Folder")
	dsl.Field(fol, "name", dsl.String(), func(p *folder) *string { return &p.Name })
	dsl.Field(fol, "entries", dsl.Slice[entry](ent), func(p *folder) *[]entry { return &p.Entries })
	return sc, fol
}

func TestExportObject(t *testing.T) {
	_, fol := folderSchema()
	s, err := jsonschema.For(fol)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if s.Ref != "#/$defs/Folder" {
		t.Fatalf("root ref: %q", s.Ref)
	}

	def, ok := s.Defs["Folder"]
	if !ok {
		t.Fatalf("Folder missing from $defs: %v", s.Defs)
	}
	if def.Type != "object" {
		t.Fatalf("type: %q", def.Type)
	}
	if def.Properties["name"].Type != "string" {
		t.Fatalf("name: %+v", def.Properties["name"])
	}
	arr := def.Properties["entries"]
	if arr.Type != "array" || arr.Items.Ref != "#/$defs/Entry" {
		t.Fatalf("entries: %+v", arr)
	}
	if len(def.Required) != 2 || def.Required[0] != "name" || def.Required[1] != "entries" {
		t.Fatalf("required: %v", def.Required)
	}

	ent := s.Defs["Entry"]
	if ent == nil {
		t.Fatalf("Entry missing from $defs")
	}
	// optional fields are nullable and not required
	if !ent.Properties["note"].Nullable {
		t.Fatalf("note: %+v", ent.Properties["note"])
	}
	for _, r := range ent.Required {
		if r == "note" {
			t.Fatalf("note must not be required")
		}
	}
	if ent.Properties["tag"].Ref != "#/$defs/Label" {
		t.Fatalf("tag: %+v", ent.Properties["tag"])
	}
}

func TestExportEnum(t *testing.T) {
	_, fol := folderSchema()
	s, err := jsonschema.For(fol)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	lab := s.Defs["Label"]
	if lab == nil {
		t.Fatalf("Label missing from $defs")
	}
	if lab.Type != "string" || len(lab.Enum) != 2 || lab.Enum[0] != "todo" || lab.Enum[1] != "done" {
		t.Fatalf("enum: %+v", lab)
	}
}

type thing interface{ isThing() }

type box struct{ Size int64 }
type ball struct{ Radius float64 }

func (*box) isThing()  {}
func (*ball) isThing() {}

func TestExportVariant(t *testing.T) {
	sc := aison.New()
	b := dsl.Object[box](sc, "box")
	dsl.Field(b, "size", dsl.Int64(), func(p *box) *int64 { return &p.Size })
	l := dsl.Object[ball](sc, "ball")
	dsl.Field(l, "radius", dsl.Float64(), func(p *ball) *float64 { return &p.Radius })
	v := dsl.Variant[thing](sc, "Thing", "kind")
	dsl.Case(v, b)
	dsl.Case(v, l)

	s, err := jsonschema.For(v)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	def := s.Defs["Thing"]
	if def == nil {
		t.Fatalf("Thing missing from $defs")
	}
	if def.Discriminator != "kind" {
		t.Fatalf("discriminator: %q", def.Discriminator)
	}
	if len(def.OneOf) != 2 {
		t.Fatalf("oneOf: %+v", def.OneOf)
	}
	if def.OneOf[0].Ref != "#/$defs/box" || def.OneOf[1].Ref != "#/$defs/ball" {
		t.Fatalf("oneOf refs: %+v, %+v", def.OneOf[0], def.OneOf[1])
	}
}

func TestExportScalarFormats(t *testing.T) {
	s, err := jsonschema.For(dsl.Int32Of[int32]())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if s.Type != "integer" || s.Format != "int32" {
		t.Fatalf("got %+v", s)
	}
	if len(s.Defs) != 0 {
		t.Fatalf("scalar export must not emit $defs: %v", s.Defs)
	}
}
