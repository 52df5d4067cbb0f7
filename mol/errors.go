package mol

import "fmt"

// ErrorKind classifies a MolError into one of the five error surfaces the
// library exposes to callers.
type ErrorKind uint8

const (
	// ErrBounds signals an out-of-range frame, atom, or residue index.
	ErrBounds ErrorKind = iota
	// ErrStructure signals an unregistered entity kind or property.
	ErrStructure
	// ErrParse signals a selection-grammar failure.
	ErrParse
	// ErrReader signals a status mapped from the reader contract.
	ErrReader
	// ErrInvariant signals an attempt to violate a store invariant (a
	// read-only view mutation, a bond self-loop, ...).
	ErrInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case ErrBounds:
		return "bounds"
	case ErrStructure:
		return "structure"
	case ErrParse:
		return "parse"
	case ErrReader:
		return "reader"
	case ErrInvariant:
		return "invariant"
	default:
		return "unknown"
	}
}

// MolError is the single error type the library raises. Its Kind lets
// callers branch on error class without string matching.
type MolError struct {
	Kind    ErrorKind
	Message string
}

func (e *MolError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is supports errors.Is(err, Bounds), errors.Is(err, Structure), etc. by
// comparing error kinds: two *MolError values are "the same" for Is
// purposes iff they share a Kind, regardless of message.
func (e *MolError) Is(target error) bool {
	other, ok := target.(*MolError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newError(kind ErrorKind, format string, args ...any) *MolError {
	return &MolError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Sentinels usable with errors.Is to test error class without a message.
var (
	Bounds    = &MolError{Kind: ErrBounds}
	Structure = &MolError{Kind: ErrStructure}
	Parse     = &MolError{Kind: ErrParse}
	Reader    = &MolError{Kind: ErrReader}
	Invariant = &MolError{Kind: ErrInvariant}
)
