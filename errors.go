package aison

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType          = "invalid_type"
	CodeRequired             = "required"
	CodeOverflow             = "overflow"
	CodeNotFinite            = "not_finite"
	CodeInvalidEnum          = "invalid_enum"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeDiscriminatorUnknown = "discriminator_unknown"
	CodeVariantUnregistered  = "variant_unregistered"
	CodeSchemaViolation      = "schema_violation"
	CodeMissingName          = "missing_name"
	CodeCustomPanic          = "custom_panic"
)

// Issue represents a single encode/decode failure, located by path.
type Issue struct {
	Path    string // Dollar path (for example: $.items[2].price).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: offending key, expected shape, etc.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of issues that implements error. A call succeeded
// iff its Issues value is empty.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at $.items[2]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Empty reports whether the call produced no issues.
func (iss Issues) Empty() bool { return len(iss) == 0 }

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
