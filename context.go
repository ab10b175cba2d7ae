package aison

import (
	"strconv"
	"strings"
)

type segment struct {
	key   string
	index int
	named bool
}

// pathStack renders the current nesting as "$", "$.key", "$[3]" and so on.
// Segments are pushed and popped strictly LIFO around every recursive step.
type pathStack struct {
	segs []segment
}

func (p *pathStack) pushKey(k string) {
	p.segs = append(p.segs, segment{key: k, named: true})
}

func (p *pathStack) pushIndex(i int) {
	p.segs = append(p.segs, segment{index: i})
}

func (p *pathStack) pop() {
	p.segs = p.segs[:len(p.segs)-1]
}

func (p *pathStack) String() string {
	b := &strings.Builder{}
	b.WriteByte('$')
	for _, s := range p.segs {
		if s.named {
			b.WriteByte('.')
			b.WriteString(s.key)
		} else {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
		}
	}
	return b.String()
}

// callState is the per-call state shared by EncodeContext and DecodeContext:
// the path stack, the issue accumulator, and the caller's config value.
// It lives for exactly one top-level Encode/Decode call.
type callState struct {
	schema  *Schema
	config  any
	path    pathStack
	issues  Issues
	flagged map[*Violations]struct{}
}

// Config returns the caller-supplied per-call config value. It is read-only
// for the duration of the call and reachable from Custom codecs.
func (c *callState) Config() any { return c.config }

// Schema returns the schema the call runs under.
func (c *callState) Schema() *Schema { return c.schema }

// Strict reports whether strict-optional mode is enabled for this schema.
func (c *callState) Strict() bool { return c.schema.strictOptional }

// Path renders the current path.
func (c *callState) Path() string { return c.path.String() }

// PushField scopes the path under an object key. The returned func pops the
// segment; call it (usually via defer) regardless of the outcome.
func (c *callState) PushField(name string) func() {
	c.path.pushKey(name)
	return c.path.pop
}

// PushIndex scopes the path under an array index.
func (c *callState) PushIndex(i int) func() {
	c.path.pushIndex(i)
	return c.path.pop
}

// AddIssue records an issue at the current path.
func (c *callState) AddIssue(code, message string) {
	c.AddIssueHint(code, message, "")
}

// AddIssueHint records an issue at the current path with a hint.
func (c *callState) AddIssueHint(code, message, hint string) {
	c.issues = AppendIssues(c.issues, Issue{Path: c.Path(), Code: code, Message: message, Hint: hint})
}

// ReportViolations surfaces schema-definition violations collected by a
// ReportPolicy, at most once per violation set per call.
func (c *callState) ReportViolations(v *Violations) {
	if v == nil || len(v.msgs) == 0 {
		return
	}
	if _, done := c.flagged[v]; done {
		return
	}
	if c.flagged == nil {
		c.flagged = map[*Violations]struct{}{}
	}
	c.flagged[v] = struct{}{}
	for _, m := range v.msgs {
		c.issues = AppendIssues(c.issues, Issue{Path: c.Path(), Code: CodeSchemaViolation, Message: m})
	}
}

// EncodeContext is the call state threaded through an Encode traversal.
type EncodeContext struct {
	callState
}

// DecodeContext is the call state threaded through a Decode traversal.
type DecodeContext struct {
	callState
}
