package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/asclient/asclient/internal/domain/protocol"
)

// Finding is a single error or warning about a recorded message.
type Finding struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f Finding) Error() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// Report holds the outcome of checking one recorded message file.
type Report struct {
	Valid    bool                     `json:"valid"`
	Kind     protocol.RefactoringKind `json:"kind,omitempty"`
	Event    string                   `json:"event,omitempty"`
	Errors   []Finding                `json:"errors,omitempty"`
	Warnings []Finding                `json:"warnings,omitempty"`
}

// recording is the envelope a recorded message file may use. Every field is
// optional; which ones are present decides how the file is read.
type recording struct {
	Event    string          `json:"event"`
	Request  json.RawMessage `json:"request"`
	Result   json.RawMessage `json:"result"`
	Response json.RawMessage `json:"response"`
}

// Check decodes a recorded message. The input is one of:
//
//   - edit.getRefactoring params, or a full request frame
//   - an object with the request under "request" and either the bare result
//     under "result" or the response frame under "response"
//   - a flutter.outline notification
//
// Results are decoded with the request's kind. Tokens outside open
// vocabularies are reported as warnings, or as errors when strict is set.
func Check(data []byte, strict bool) *Report {
	report := &Report{Valid: true}
	opts := []protocol.DecodeOption{
		protocol.OnUnrecognized(func(u protocol.UnrecognizedKind) {
			report.Warnings = append(report.Warnings, Finding{
				Field:   u.Path,
				Message: fmt.Sprintf("unrecognized %s value %q", u.Vocabulary, u.Token),
			})
		}),
	}
	if strict {
		opts = append(opts, protocol.Strict())
	}

	var rec recording
	if err := json.Unmarshal(data, &rec); err != nil {
		rec = recording{}
	}

	if rec.Event != "" {
		report.Event = rec.Event
		if _, err := DecodeOutline(data, opts...); err != nil {
			report.fail("params", err)
		}
		return report
	}

	request, prefix := json.RawMessage(data), ""
	if rec.Request != nil {
		request, prefix = rec.Request, "request"
	}
	env, err := checkRequest(request, opts)
	if err != nil {
		report.fail(prefix, err)
		return report
	}
	report.Kind = env.Kind

	switch {
	case rec.Response != nil:
		_, _, err := DecodeResponse(env.Kind, rec.Response, opts...)
		var rpcErr *protocol.RequestError
		if errors.As(err, &rpcErr) {
			report.Warnings = append(report.Warnings, Finding{Field: "response.error", Message: rpcErr.Error()})
		} else if err != nil {
			report.fail("response", err)
		}
	case rec.Result != nil:
		if _, err := DecodeResult(env.Kind, rec.Result, opts...); err != nil {
			report.fail("result", err)
		}
	}
	return report
}

// checkRequest accepts either bare params or a request frame.
func checkRequest(data []byte, opts []protocol.DecodeOption) (Envelope, error) {
	var frame struct {
		Method *string `json:"method"`
	}
	if json.Unmarshal(data, &frame) == nil && frame.Method != nil {
		_, env, err := DecodeRequest(data, opts...)
		return env, err
	}
	return DecodeMessage(data, opts...)
}

func (r *Report) fail(prefix string, err error) {
	r.Valid = false
	r.Errors = append(r.Errors, Finding{
		Field:   joinField(prefix, FieldOf(err)),
		Message: err.Error(),
	})
}

// FieldOf returns the wire path a decode error refers to.
func FieldOf(err error) string {
	var (
		missing      *protocol.MissingFieldError
		mismatch     *protocol.TypeMismatchError
		unknownEnum  *protocol.UnknownEnumValueError
		unrecognized *protocol.UnrecognizedKindError
		unknownKind  *protocol.UnknownKindError
		payload      *protocol.InvalidVariantPayloadError
		syntax       *protocol.SyntaxError
	)
	switch {
	case errors.As(err, &payload):
		prefix := "options"
		if payload.Family == protocol.FamilyFeedback {
			prefix = "feedback"
		}
		return joinField(prefix, FieldOf(payload.Cause))
	case errors.As(err, &missing):
		return missing.Field
	case errors.As(err, &mismatch):
		return mismatch.Field
	case errors.As(err, &unknownEnum):
		return unknownEnum.Path
	case errors.As(err, &unrecognized):
		return unrecognized.Path
	case errors.As(err, &unknownKind):
		return "kind"
	case errors.As(err, &syntax):
		return "json"
	}
	return ""
}

func joinField(prefix, field string) string {
	switch {
	case prefix == "":
		return field
	case field == "":
		return prefix
	}
	return prefix + "." + field
}

// CheckFile reads and checks a recorded message file.
func CheckFile(path string, strict bool) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Check(data, strict), nil
}

// CheckDirectory checks every JSON file in a directory.
func CheckDirectory(dir string, strict bool) (map[string]*Report, error) {
	reports := make(map[string]*Report)

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}

		report, err := CheckFile(filepath.Join(dir, file.Name()), strict)
		if err != nil {
			reports[file.Name()] = &Report{
				Valid:  false,
				Errors: []Finding{{Field: "file", Message: err.Error()}},
			}
			continue
		}
		reports[file.Name()] = report
	}

	return reports, nil
}
