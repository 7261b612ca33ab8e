package parser

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why input was rejected.
type ErrorKind int

const (
	// KindInvalidFormat: the input does not match the command's grammar.
	KindInvalidFormat ErrorKind = iota + 1
	// KindUnexpectedArguments: a command that takes no arguments got some.
	KindUnexpectedArguments
	// KindUnknownCommand: the command word is not recognised.
	KindUnknownCommand
	// KindInvalidValue: a field is present but its value is malformed.
	KindInvalidValue
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidFormat:
		return "invalid format"
	case KindUnexpectedArguments:
		return "unexpected arguments"
	case KindUnknownCommand:
		return "unknown command"
	case KindInvalidValue:
		return "invalid value"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

const (
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageUnknownCommand       = "Unknown command"
	MessageDuplicateFields      = "Multiple values specified for the following single-valued field(s): "
	MessageNotEdited            = "At least one field to edit must be provided."
	MessageInvalidIndex         = "Index is not a non-zero unsigned integer."
)

// ErrParse matches every *Error with errors.Is.
var ErrParse = errors.New("parse error")

// Error is returned for any input the parser rejects. Message is meant for
// the user as is.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool { return target == ErrParse }

func invalidFormat(usage string) *Error {
	return &Error{Kind: KindInvalidFormat, Message: fmt.Sprintf(MessageInvalidCommandFormat, usage)}
}

func invalidValue(msg string) *Error {
	return &Error{Kind: KindInvalidValue, Message: msg}
}

// KindOf returns the kind of a parse error, or 0 if err is not one.
func KindOf(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}
