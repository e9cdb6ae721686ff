package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindContract  ErrKind = iota // caller broke an API contract (nil object, empty class name, ...)
	ErrKindNotFound                 // missing class or object registration
	ErrKindExhausted                // storage growth or allocation failure
	ErrKindCallback                 // a host-supplied codec reported failure
	ErrKindParse                    // malformed preference document or attribute value
	ErrKindState                    // invalid operation for current state (closed context, duplicate registration)
)

// String returns the kind's name for logs and test output.
func (k ErrKind) String() string {
	switch k {
	case ErrKindContract:
		return "contract"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindExhausted:
		return "exhausted"
	case ErrKindCallback:
		return "callback"
	case ErrKindParse:
		return "parse"
	case ErrKindState:
		return "state"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same Kind, so callers can test against the
// sentinels below with errors.Is regardless of message detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrNotFound indicates a missing class or object registration.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrNilObject indicates a nil object where a live one is required.
	ErrNilObject = &Error{Kind: ErrKindContract, Msg: "object is nil"}
	// ErrEmptyClassName indicates an empty class name.
	ErrEmptyClassName = &Error{Kind: ErrKindContract, Msg: "class name may not be empty"}
	// ErrClassExists indicates an attempt to register a duplicate class name.
	ErrClassExists = &Error{Kind: ErrKindContract, Msg: "class name already registered"}
	// ErrObjectRegistered indicates the object pointer already holds a handle.
	ErrObjectRegistered = &Error{Kind: ErrKindState, Msg: "object already registered"}
	// ErrClosed indicates a call on a context after Close.
	ErrClosed = &Error{Kind: ErrKindState, Msg: "context is closed"}
)

// Wrap builds a typed error around a cause. A nil cause yields a plain
// typed error.
func Wrap(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}
