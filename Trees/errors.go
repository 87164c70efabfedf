package Trees

// InvalidArgumentError is returned when an operation is called with an argument
// it can't work with. The tree is never modified when it's returned.
type InvalidArgumentError struct {
	Op  string
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return e.Op + ": " + e.Msg
}

// Is reports whether target is an InvalidArgumentError with the same message,
// so that errors.Is(err, ErrNilVisitor) matches every traversal.
func (e *InvalidArgumentError) Is(target error) bool {
	t, ok := target.(*InvalidArgumentError)
	return ok && t.Msg == e.Msg
}

// ErrNilVisitor matches the error returned by traversals given a nil visitor.
var ErrNilVisitor = &InvalidArgumentError{Op: "traversal", Msg: "visitor function is nil"}

func nilVisitor(op string) error {
	return &InvalidArgumentError{Op: op, Msg: ErrNilVisitor.Msg}
}
