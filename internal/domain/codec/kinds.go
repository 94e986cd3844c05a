package codec

import (
	"errors"

	"github.com/asclient/asclient/internal/domain/protocol"
)

// ErrorKind names the class of a decoding or protocol failure.
type ErrorKind string

const (
	ErrorKindMissingField   ErrorKind = "missing-field"
	ErrorKindTypeMismatch   ErrorKind = "type-mismatch"
	ErrorKindUnknownEnum    ErrorKind = "unknown-enum"
	ErrorKindUnrecognized   ErrorKind = "unrecognized"
	ErrorKindUnknownKind    ErrorKind = "unknown-kind"
	ErrorKindInvalidPayload ErrorKind = "invalid-payload"
	ErrorKindSyntax         ErrorKind = "syntax"
	ErrorKindServer         ErrorKind = "server"
)

// KindOf returns the kind of the first protocol error found in err's chain,
// or "" when there is none. An invalid payload wins over the error it wraps.
func KindOf(err error) ErrorKind {
	var (
		payload      *protocol.InvalidVariantPayloadError
		unknownKind  *protocol.UnknownKindError
		missing      *protocol.MissingFieldError
		mismatch     *protocol.TypeMismatchError
		unknownEnum  *protocol.UnknownEnumValueError
		unrecognized *protocol.UnrecognizedKindError
		syntax       *protocol.SyntaxError
		server       *protocol.RequestError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &payload):
		return ErrorKindInvalidPayload
	case errors.As(err, &unknownKind):
		return ErrorKindUnknownKind
	case errors.As(err, &missing):
		return ErrorKindMissingField
	case errors.As(err, &mismatch):
		return ErrorKindTypeMismatch
	case errors.As(err, &unknownEnum):
		return ErrorKindUnknownEnum
	case errors.As(err, &unrecognized):
		return ErrorKindUnrecognized
	case errors.As(err, &syntax):
		return ErrorKindSyntax
	case errors.As(err, &server):
		return ErrorKindServer
	}
	return ""
}
