package aison

import "sync"

// Schema owns the descriptor registry and the policy knobs for one
// encode/decode domain. Descriptors register themselves on construction;
// re-registering the same descriptor is a no-op. Registration is not
// synchronized against concurrent encode/decode: declare all descriptors
// up front (package init or main) before sharing the schema across
// goroutines.
type Schema struct {
	policy         ViolationPolicy
	strictOptional bool
	introspection  bool

	mu    sync.Mutex
	types map[TypeID]Type
	order []TypeID
}

// Option configures a Schema at construction.
type Option func(*Schema)

// New builds a Schema. The default policy is ReportPolicy; strict-optional
// and introspection are off.
func New(opts ...Option) *Schema {
	s := &Schema{
		policy: ReportPolicy{},
		types:  map[TypeID]Type{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// StrictOptional requires nullable fields to be present in both directions:
// encode always emits the key (possibly null) and decode treats a missing
// key as a required-field error.
func StrictOptional() Option {
	return func(s *Schema) { s.strictOptional = true }
}

// WithPolicy selects how schema-definition violations are handled.
func WithPolicy(p ViolationPolicy) Option {
	return func(s *Schema) { s.policy = p }
}

// WithIntrospection enables the introspection registry. Named descriptors
// become mandatory for Object/Enum/Variant declarations.
func WithIntrospection() Option {
	return func(s *Schema) { s.introspection = true }
}

// Introspection reports whether the introspection registry is enabled.
func (s *Schema) Introspection() bool { return s.introspection }

// Register records a descriptor in the schema registry.
func (s *Schema) Register(t Type) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.types[t.TypeID()]; ok {
		return
	}
	s.types[t.TypeID()] = t
	s.order = append(s.order, t.TypeID())
}

// Registered returns all registered descriptors in registration order.
func (s *Schema) Registered() []Type {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Type, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.types[id])
	}
	return out
}

// Violation routes a schema-definition violation through the schema policy.
// Exported for the dsl subpackage.
func (s *Schema) Violation(set *Violations, msg string) {
	s.policy.Violation(set, msg)
}

// Violations accumulates schema-definition violations for one descriptor.
// Under ReportPolicy the engine surfaces them as runtime issues, once per
// call; under PanicPolicy the set stays empty because the first violation
// halts the program.
type Violations struct {
	msgs []string
}

// Messages returns the accumulated violation messages.
func (v *Violations) Messages() []string { return v.msgs }

// Empty reports whether any violation was recorded.
func (v *Violations) Empty() bool { return len(v.msgs) == 0 }

// ViolationPolicy decides what happens when a schema declaration is misused
// (duplicate field, duplicate enum value, empty discriminator, missing name).
type ViolationPolicy interface {
	Violation(set *Violations, msg string)
}

// PanicPolicy halts on the first violation. Use it during development to
// catch schema misuse at declaration time.
type PanicPolicy struct{}

func (PanicPolicy) Violation(_ *Violations, msg string) {
	panic("aison: " + msg)
}

// ReportPolicy keeps the first registration, discards the conflicting one,
// and surfaces the violation as a schema_violation issue whenever the
// descriptor is used.
type ReportPolicy struct{}

func (ReportPolicy) Violation(set *Violations, msg string) {
	set.msgs = append(set.msgs, msg)
}
