package errors

import (
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/asclient/asclient/internal/domain/codec"
	"github.com/asclient/asclient/internal/domain/protocol"
)

type ErrorKind = codec.ErrorKind

const (
	ErrorKindMissingField   = codec.ErrorKindMissingField
	ErrorKindTypeMismatch   = codec.ErrorKindTypeMismatch
	ErrorKindUnknownEnum    = codec.ErrorKindUnknownEnum
	ErrorKindUnrecognized   = codec.ErrorKindUnrecognized
	ErrorKindUnknownKind    = codec.ErrorKindUnknownKind
	ErrorKindInvalidPayload = codec.ErrorKindInvalidPayload
	ErrorKindSyntax         = codec.ErrorKindSyntax
	ErrorKindServer         = codec.ErrorKindServer

	ErrorKindNotFound ErrorKind = "not-found"
	ErrorKindConfig   ErrorKind = "config"
	ErrorKindOther    ErrorKind = "other"
)

type ClassifiedError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Hint    string    `json:"hint,omitempty"` // User-friendly suggestion
	Raw     error     `json:"-"`
}

func (e ClassifiedError) Error() string {
	return e.Message
}

func (e ClassifiedError) Unwrap() error {
	return e.Raw
}

// Classify attaches a kind and a hint to err. Protocol errors take their kind
// from codec.KindOf; everything else is sorted by the file system error or the
// message text.
func Classify(err error) ClassifiedError {
	if err == nil {
		return ClassifiedError{}
	}

	classified := ClassifiedError{Kind: codec.KindOf(err), Message: err.Error(), Raw: err}

	switch classified.Kind {
	case ErrorKindInvalidPayload:
		var payload *protocol.InvalidVariantPayloadError
		stderrors.As(err, &payload)
		classified.Hint = "The " + string(payload.Family) + " payload does not match the shape " + string(payload.Kind) + " requires. Run 'asclient vocab RefactoringKind' to list kinds."
	case ErrorKindUnknownKind:
		classified.Hint = "Run 'asclient vocab RefactoringKind' to list the supported refactoring kinds."
	case ErrorKindMissingField:
		var missing *protocol.MissingFieldError
		stderrors.As(err, &missing)
		classified.Hint = "Add the required field \"" + missing.Field + "\" to the " + missing.Type + " object."
	case ErrorKindTypeMismatch:
		var mismatch *protocol.TypeMismatchError
		stderrors.As(err, &mismatch)
		if mismatch.Field == "" {
			classified.Hint = "The " + mismatch.Type + " value must be a JSON " + mismatch.Expected + "."
		} else {
			classified.Hint = "Field \"" + mismatch.Field + "\" must hold a JSON " + mismatch.Expected + "."
		}
	case ErrorKindUnknownEnum:
		var unknownEnum *protocol.UnknownEnumValueError
		stderrors.As(err, &unknownEnum)
		classified.Hint = "Run 'asclient vocab " + unknownEnum.Vocabulary + "' to list accepted values."
	case ErrorKindUnrecognized:
		classified.Hint = "Drop --strict to accept values newer than this client."
	case ErrorKindSyntax:
		classified.Hint = "The input is not a single well-formed JSON document."
	case ErrorKindServer:
		var server *protocol.RequestError
		stderrors.As(err, &server)
		classified.Hint = "The analysis server rejected the request with " + server.Code + "."
	default:
		msg := strings.ToLower(err.Error())
		switch {
		case stderrors.Is(err, fs.ErrNotExist):
			classified.Kind = ErrorKindNotFound
			classified.Hint = "Check the file path."
		case strings.Contains(msg, "config") || strings.Contains(msg, "asclient_"):
			classified.Kind = ErrorKindConfig
			classified.Hint = "Check the config file and ASCLIENT_* environment variables."
		case strings.Contains(msg, "not found") || strings.Contains(msg, "no such file"):
			classified.Kind = ErrorKindNotFound
			classified.Hint = "Check the file path."
		default:
			classified.Kind = ErrorKindOther
			classified.Hint = "An unexpected error occurred."
		}
	}
	return classified
}
