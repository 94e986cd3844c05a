// Package codec converts edit.getRefactoring params and results between JSON
// and typed values, dispatching the refactoring payloads on their kind.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/asclient/asclient/internal/domain/protocol"
)

// Envelope is the params object of an edit.getRefactoring request: a
// refactoring kind together with the options payload it selects.
type Envelope struct {
	Kind         protocol.RefactoringKind    `json:"kind"`
	File         string                      `json:"file"`
	Offset       int                         `json:"offset"`
	Length       int                         `json:"length"`
	ValidateOnly bool                        `json:"validateOnly"`
	Options      protocol.RefactoringOptions `json:"options,omitempty"`
}

// Validate reports an options payload whose shape belongs to another kind.
func (e Envelope) Validate() error {
	if e.Options == nil {
		return nil
	}
	v, err := protocol.ResolveVariant(protocol.FamilyOptions, string(e.Kind))
	if err != nil {
		return err
	}
	if want := v.NewOptions().Kind(); e.Options.Kind() != want {
		return fmt.Errorf("codec: %s envelope carries %T options", e.Kind, e.Options)
	}
	return nil
}

// Result is the result object of an edit.getRefactoring response.
type Result struct {
	InitialProblems protocol.RefactoringProblems `json:"initialProblems"`
	OptionsProblems protocol.RefactoringProblems `json:"optionsProblems"`
	FinalProblems   protocol.RefactoringProblems `json:"finalProblems"`
	Feedback        protocol.RefactoringFeedback `json:"feedback,omitempty"`
	Change          *protocol.SourceChange       `json:"change,omitempty"`
	PotentialEdits  []string                     `json:"potentialEdits,omitempty"`
}

// MaxSeverity returns the most severe problem reported in any phase, or "" if
// there were none.
func (r Result) MaxSeverity() protocol.RefactoringProblemSeverity {
	worst := r.InitialProblems.MaxSeverity()
	worst = protocol.MaxSeverity(worst, r.OptionsProblems.MaxSeverity())
	return protocol.MaxSeverity(worst, r.FinalProblems.MaxSeverity())
}

type kindHead struct {
	Kind string `json:"kind"`
}

func (kindHead) WireName() string { return "EditGetRefactoringParams" }

type wireParams struct {
	File         string          `json:"file"`
	Offset       int             `json:"offset"`
	Length       int             `json:"length"`
	ValidateOnly bool            `json:"validateOnly"`
	Options      json.RawMessage `json:"options,omitempty"`
}

func (wireParams) WireName() string { return "EditGetRefactoringParams" }

type wireResult struct {
	InitialProblems protocol.RefactoringProblems `json:"initialProblems"`
	OptionsProblems protocol.RefactoringProblems `json:"optionsProblems"`
	FinalProblems   protocol.RefactoringProblems `json:"finalProblems"`
	Feedback        json.RawMessage              `json:"feedback,omitempty"`
	Change          *protocol.SourceChange       `json:"change,omitempty"`
	PotentialEdits  []string                     `json:"potentialEdits,omitempty"`
}

func (wireResult) WireName() string { return "EditGetRefactoringResult" }

// DecodeMessage decodes edit.getRefactoring params. The kind is read and
// resolved before anything else, then the plain fields, then the options
// payload against the shape the kind selects. Absent or null options decode to
// a nil Options.
func DecodeMessage(data []byte, opts ...protocol.DecodeOption) (Envelope, error) {
	var head kindHead
	if err := protocol.Decode(data, &head); err != nil {
		return Envelope{}, err
	}
	if _, err := protocol.ResolveVariant(protocol.FamilyOptions, head.Kind); err != nil {
		return Envelope{}, err
	}
	kind := protocol.RefactoringKind(head.Kind)

	var w wireParams
	if err := protocol.Decode(data, &w, opts...); err != nil {
		return Envelope{}, err
	}

	env := Envelope{
		Kind:         kind,
		File:         w.File,
		Offset:       w.Offset,
		Length:       w.Length,
		ValidateOnly: w.ValidateOnly,
	}
	if w.Options != nil {
		options, err := protocol.DecodeOptions(kind, w.Options, opts...)
		if err != nil {
			return Envelope{}, err
		}
		env.Options = options
	}
	return env, nil
}

// EncodeMessage encodes edit.getRefactoring params. A nil Options is omitted.
func EncodeMessage(e Envelope) ([]byte, error) {
	return protocol.Encode(e)
}

// DecodeResult decodes an edit.getRefactoring result. The feedback payload
// carries no kind of its own, so the kind of the request being answered
// selects its shape.
func DecodeResult(kind protocol.RefactoringKind, data []byte, opts ...protocol.DecodeOption) (Result, error) {
	if _, err := protocol.ResolveVariant(protocol.FamilyFeedback, string(kind)); err != nil {
		return Result{}, err
	}

	var w wireResult
	if err := protocol.Decode(data, &w, opts...); err != nil {
		return Result{}, err
	}

	r := Result{
		InitialProblems: w.InitialProblems,
		OptionsProblems: w.OptionsProblems,
		FinalProblems:   w.FinalProblems,
		Change:          w.Change,
		PotentialEdits:  w.PotentialEdits,
	}
	if w.Feedback != nil {
		feedback, err := protocol.DecodeFeedback(kind, w.Feedback, opts...)
		if err != nil {
			return Result{}, err
		}
		r.Feedback = feedback
	}
	return r, nil
}

// EncodeResult encodes an edit.getRefactoring result.
func EncodeResult(r Result) ([]byte, error) {
	return protocol.Encode(r)
}

// Equal reports whether two envelopes are structurally equal.
func Equal(a, b Envelope) bool {
	return protocol.Equal(a, b)
}
