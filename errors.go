package stream

// Error represents a stream error.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "stream: " + e.Op + ": " + e.Err.Error()
	}
	return "stream: " + e.Op
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Common errors
var (
	// ErrNoAccess indicates a constructor was called without requesting
	// read or write access.
	ErrNoAccess = &Error{Op: "no access requested"}

	// ErrNilSource indicates a required source, file or buffer was nil.
	ErrNilSource = &Error{Op: "nil source"}

	// ErrInvalidSize indicates a zero or negative buffer size.
	ErrInvalidSize = &Error{Op: "invalid size"}

	// ErrInvalidSeek indicates a seek target outside the addressable range.
	ErrInvalidSeek = &Error{Op: "seek out of range"}

	// ErrClosed indicates an operation on a nil or already-closed handle.
	ErrClosed = &Error{Op: "stream closed"}
)
