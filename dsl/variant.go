package dsl

import (
	"fmt"
	"reflect"
	"sync"

	aison "github.com/gidapataki/aison-sub000"
	"github.com/gidapataki/aison-sub000/i18n"
	"github.com/gidapataki/aison-sub000/node"
)

// VariantType maps an interface I to one of several object alternatives,
// discriminated by a string tag stored under the discriminator key. Decode
// compares tags in declaration order and the first match wins, even when
// tags collide.
type VariantType[I any] struct {
	aison.Base[I]
	id         aison.TypeID
	sc         *aison.Schema
	name       string
	key        string
	alts       []variantAlt[I]
	violations *aison.Violations
	check      sync.Once
}

type variantAlt[I any] struct {
	tag   string
	obj   aison.Type
	match func(I) (any, bool)
	alloc func() (any, I)
}

// Variant declares a variant descriptor for interface I with the given
// discriminator key and registers it on the schema.
func Variant[I any](sc *aison.Schema, name, key string) *VariantType[I] {
	v := &VariantType[I]{
		id:         aison.NewTypeID(),
		sc:         sc,
		name:       name,
		key:        key,
		violations: &aison.Violations{},
	}
	sc.Register(v)
	return v
}

// Case registers an alternative backed by *T, tagged with the alternative
// object's own name.
func Case[I, T any](v *VariantType[I], obj *ObjectType[T]) *VariantType[I] {
	return CaseTagged(v, obj.Name(), obj)
}

// CaseTagged registers an alternative with an explicit tag. *T must satisfy
// I; a violation is recorded otherwise and the alternative is dropped.
func CaseTagged[I, T any](v *VariantType[I], tag string, obj *ObjectType[T]) *VariantType[I] {
	if _, ok := any((*T)(nil)).(I); !ok {
		v.sc.Violation(v.violations, fmt.Sprintf("variant %s: *%s does not satisfy the variant interface",
			v.displayName(), reflect.TypeOf((*T)(nil)).Elem().Name()))
		return v
	}
	if tag == "" {
		v.sc.Violation(v.violations, fmt.Sprintf("variant %s: alternative object must have a name (used as its tag)", v.displayName()))
		return v
	}
	v.alts = append(v.alts, variantAlt[I]{
		tag: tag,
		obj: obj,
		match: func(i I) (any, bool) {
			p, ok := any(i).(*T)
			return p, ok
		},
		alloc: func() (any, I) {
			p := new(T)
			return p, any(p).(I)
		},
	})
	return v
}

func (v *VariantType[I]) displayName() string {
	if v.name != "" {
		return v.name
	}
	return fmt.Sprintf("#%d", v.id)
}

func (v *VariantType[I]) Kind() aison.Kind     { return aison.KindVariant }
func (v *VariantType[I]) Name() string         { return v.name }
func (v *VariantType[I]) TypeID() aison.TypeID { return v.id }

// Discriminator returns the discriminator key.
func (v *VariantType[I]) Discriminator() string { return v.key }

// Alternatives exposes the tagged alternative list for introspection.
func (v *VariantType[I]) Alternatives() []aison.Alternative {
	out := make([]aison.Alternative, 0, len(v.alts))
	for _, a := range v.alts {
		out = append(out, aison.Alternative{Tag: a.tag, Object: a.obj})
	}
	return out
}

func (v *VariantType[I]) validate() {
	if v.key == "" {
		v.sc.Violation(v.violations, fmt.Sprintf("variant %s: empty discriminator key", v.displayName()))
	}
	if len(v.alts) == 0 {
		v.sc.Violation(v.violations, fmt.Sprintf("variant %s: at least one alternative required", v.displayName()))
	}
	if v.sc.Introspection() && v.name == "" {
		v.sc.Violation(v.violations, fmt.Sprintf("variant %s: introspection requires a name", v.displayName()))
	}
}

// EncodeValue encodes the alternative the value currently holds as an
// object, then writes the discriminator key with that alternative's tag.
func (v *VariantType[I]) EncodeValue(ec *aison.EncodeContext, src any, dst *node.Node) {
	v.check.Do(v.validate)
	ec.ReportViolations(v.violations)
	val := *(src.(*I))
	for i := range v.alts {
		p, ok := v.alts[i].match(val)
		if !ok {
			continue
		}
		v.alts[i].obj.EncodeValue(ec, p, dst)
		if dst.Kind() == node.KindObject {
			dst.Set(v.key, node.String(v.alts[i].tag))
		}
		return
	}
	ec.AddIssueHint(aison.CodeVariantUnregistered, i18n.T(aison.CodeVariantUnregistered, nil),
		fmt.Sprintf("value of %s matches no registered alternative", v.displayName()))
}

func (v *VariantType[I]) DecodeValue(dc *aison.DecodeContext, n node.Node, dst any) {
	v.check.Do(v.validate)
	dc.ReportViolations(v.violations)
	if n.Kind() != node.KindObject {
		dc.AddIssueHint(aison.CodeInvalidType, i18n.T(aison.CodeInvalidType, nil), "expected object, got "+n.Kind().String())
		return
	}
	pop := dc.PushField(v.key)
	tagNode, ok := n.Get(v.key)
	if !ok {
		dc.AddIssue(aison.CodeDiscriminatorMissing, i18n.T(aison.CodeDiscriminatorMissing, nil))
		pop()
		return
	}
	tag, ok := tagNode.Str()
	if !ok {
		dc.AddIssueHint(aison.CodeInvalidType, i18n.T(aison.CodeInvalidType, nil), "expected string, got "+tagNode.Kind().String())
		pop()
		return
	}
	var alt *variantAlt[I]
	for i := range v.alts {
		if v.alts[i].tag == tag {
			alt = &v.alts[i]
			break
		}
	}
	if alt == nil {
		dc.AddIssueHint(aison.CodeDiscriminatorUnknown, i18n.T(aison.CodeDiscriminatorUnknown, nil), fmt.Sprintf("unknown tag %q", tag))
		pop()
		return
	}
	pop()
	p, iface := alt.alloc()
	alt.obj.DecodeValue(dc, n, p)
	*(dst.(*I)) = iface
}
