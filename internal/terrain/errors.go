package terrain

// ValidationKind enumerates the rejected-input cases. These are the
// only failures the core produces; everything past validation is a
// total function over its documented domain.
type ValidationKind int

const (
	ErrBadSize ValidationKind = iota + 1
	ErrUnknownArchetype
)

// ValidationError reports a rejected GenerationConfig. It is returned
// synchronously, before any grid is allocated.
type ValidationError struct {
	Kind ValidationKind
	Msg  string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
