package storage

import "fmt"

// Kind classifies a storage-layer error so api/handlers can map it to an
// HTTP status.
type Kind int

const (
	InvalidArgument Kind = iota
	InternalError
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func NewErrorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
