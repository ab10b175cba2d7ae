package dsl

import (
	"fmt"
	"sync"

	aison "github.com/gidapataki/aison-sub000"
	"github.com/gidapataki/aison-sub000/i18n"
	"github.com/gidapataki/aison-sub000/node"
	"golang.org/x/exp/constraints"
)

// EnumType maps an integer-backed enumeration to canonical names. Decode
// accepts canonical names and aliases; encode only ever emits a canonical
// name.
type EnumType[T constraints.Integer] struct {
	aison.Base[T]
	id         aison.TypeID
	sc         *aison.Schema
	name       string
	entries    []aison.EnumEntry
	aliases    []aison.EnumEntry
	nameOf     map[int64]string
	valueOf    map[string]int64
	aliasOf    map[string]int64
	violations *aison.Violations
	check      sync.Once
}

// Enum declares an enum descriptor for T and registers it on the schema.
func Enum[T constraints.Integer](sc *aison.Schema, name string) *EnumType[T] {
	e := &EnumType[T]{
		id:         aison.NewTypeID(),
		sc:         sc,
		name:       name,
		nameOf:     map[int64]string{},
		valueOf:    map[string]int64{},
		aliasOf:    map[string]int64{},
		violations: &aison.Violations{},
	}
	sc.Register(e)
	return e
}

// Value registers a canonical (value, name) pair. Duplicate values and
// duplicate names keep the first registration.
func (e *EnumType[T]) Value(v T, name string) *EnumType[T] {
	iv := int64(v)
	if _, dup := e.nameOf[iv]; dup {
		e.sc.Violation(e.violations, fmt.Sprintf("enum %s: duplicate value %d", e.displayName(), iv))
		return e
	}
	if _, dup := e.valueOf[name]; dup {
		e.sc.Violation(e.violations, fmt.Sprintf("enum %s: duplicate name %q", e.displayName(), name))
		return e
	}
	e.nameOf[iv] = name
	e.valueOf[name] = iv
	e.entries = append(e.entries, aison.EnumEntry{Name: name, Value: iv})
	return e
}

// Alias registers a decode-only alias for v. Aliases never win over a
// canonical name with the same spelling.
func (e *EnumType[T]) Alias(name string, v T) *EnumType[T] {
	if _, dup := e.aliasOf[name]; dup {
		e.sc.Violation(e.violations, fmt.Sprintf("enum %s: duplicate alias %q", e.displayName(), name))
		return e
	}
	e.aliasOf[name] = int64(v)
	e.aliases = append(e.aliases, aison.EnumEntry{Name: name, Value: int64(v)})
	return e
}

func (e *EnumType[T]) displayName() string {
	if e.name != "" {
		return e.name
	}
	return fmt.Sprintf("#%d", e.id)
}

func (e *EnumType[T]) Kind() aison.Kind     { return aison.KindEnum }
func (e *EnumType[T]) Name() string         { return e.name }
func (e *EnumType[T]) TypeID() aison.TypeID { return e.id }

// Entries exposes the canonical table for introspection.
func (e *EnumType[T]) Entries() []aison.EnumEntry { return e.entries }

// Aliases exposes the alias table for introspection.
func (e *EnumType[T]) Aliases() []aison.EnumEntry { return e.aliases }

func (e *EnumType[T]) validate() {
	if e.sc.Introspection() && e.name == "" {
		e.sc.Violation(e.violations, fmt.Sprintf("enum %s: introspection requires a name", e.displayName()))
	}
}

func (e *EnumType[T]) EncodeValue(ec *aison.EncodeContext, src any, dst *node.Node) {
	e.check.Do(e.validate)
	ec.ReportViolations(e.violations)
	iv := int64(*(src.(*T)))
	name, ok := e.nameOf[iv]
	if !ok {
		ec.AddIssueHint(aison.CodeInvalidEnum, i18n.T(aison.CodeInvalidEnum, nil), fmt.Sprintf("no name registered for value %d", iv))
		return
	}
	*dst = node.String(name)
}

func (e *EnumType[T]) DecodeValue(dc *aison.DecodeContext, n node.Node, dst any) {
	e.check.Do(e.validate)
	dc.ReportViolations(e.violations)
	s, ok := n.Str()
	if !ok {
		dc.AddIssueHint(aison.CodeInvalidType, i18n.T(aison.CodeInvalidType, nil), "expected string, got "+n.Kind().String())
		return
	}
	if v, ok := e.valueOf[s]; ok {
		*(dst.(*T)) = T(v)
		return
	}
	if v, ok := e.aliasOf[s]; ok {
		*(dst.(*T)) = T(v)
		return
	}
	dc.AddIssueHint(aison.CodeInvalidEnum, i18n.T(aison.CodeInvalidEnum, nil), fmt.Sprintf("unknown name %q", s))
}
