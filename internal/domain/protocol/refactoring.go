package protocol

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// RefactoringKind names a refactoring. It selects which options and feedback
// shapes accompany a refactoring request and its result.
type RefactoringKind string

const (
	RefactoringKindConvertGetterToMethod RefactoringKind = "CONVERT_GETTER_TO_METHOD"
	RefactoringKindConvertMethodToGetter RefactoringKind = "CONVERT_METHOD_TO_GETTER"
	RefactoringKindExtractLocalVariable  RefactoringKind = "EXTRACT_LOCAL_VARIABLE"
	RefactoringKindExtractMethod         RefactoringKind = "EXTRACT_METHOD"
	RefactoringKindExtractWidget         RefactoringKind = "EXTRACT_WIDGET"
	RefactoringKindInlineLocalVariable   RefactoringKind = "INLINE_LOCAL_VARIABLE"
	RefactoringKindInlineMethod          RefactoringKind = "INLINE_METHOD"
	RefactoringKindMoveFile              RefactoringKind = "MOVE_FILE"
	RefactoringKindRename                RefactoringKind = "RENAME"
)

var refactoringKinds = closedVocabulary[RefactoringKind]("RefactoringKind", nil,
	RefactoringKindConvertGetterToMethod,
	RefactoringKindConvertMethodToGetter,
	RefactoringKindExtractLocalVariable,
	RefactoringKindExtractMethod,
	RefactoringKindExtractWidget,
	RefactoringKindInlineLocalVariable,
	RefactoringKindInlineMethod,
	RefactoringKindMoveFile,
	RefactoringKindRename,
)

func (RefactoringKind) Vocabulary() *Vocabulary { return refactoringKinds }

// Family names a polymorphic payload family.
type Family string

const (
	FamilyOptions  Family = "RefactoringOptions"
	FamilyFeedback Family = "RefactoringFeedback"
)

// RefactoringOptions is the user-supplied part of a refactoring request.
// Implementations are NoOptions and one struct per kind that takes options.
type RefactoringOptions interface {
	Kind() RefactoringKind
	isRefactoringOptions()
}

// RefactoringFeedback is the server-computed part of a refactoring result.
// Implementations are NoFeedback and one struct per kind that reports feedback.
type RefactoringFeedback interface {
	Kind() RefactoringKind
	isRefactoringFeedback()
}

// NoOptions is the options payload of refactorings that take none. All values
// are equal.
type NoOptions struct{}

func (NoOptions) Kind() RefactoringKind { return "" }
func (NoOptions) isRefactoringOptions() {}
func (NoOptions) WireName() string      { return string(FamilyOptions) }

// NoFeedback is the feedback payload of refactorings that report none. All
// values are equal.
type NoFeedback struct{}

func (NoFeedback) Kind() RefactoringKind  { return "" }
func (NoFeedback) isRefactoringFeedback() {}
func (NoFeedback) WireName() string       { return string(FamilyFeedback) }

// ExtractLocalVariableOptions are the options of EXTRACT_LOCAL_VARIABLE.
type ExtractLocalVariableOptions struct {
	Name       string `json:"name"`
	ExtractAll bool   `json:"extractAll"`
}

func (ExtractLocalVariableOptions) Kind() RefactoringKind { return RefactoringKindExtractLocalVariable }
func (ExtractLocalVariableOptions) isRefactoringOptions() {}

// ExtractLocalVariableFeedback is the feedback of EXTRACT_LOCAL_VARIABLE.
type ExtractLocalVariableFeedback struct {
	CoveringExpressionOffsets []int    `json:"coveringExpressionOffsets,omitempty"`
	CoveringExpressionLengths []int    `json:"coveringExpressionLengths,omitempty"`
	Names                     []string `json:"names"`
	Offsets                   []int    `json:"offsets"`
	Lengths                   []int    `json:"lengths"`
}

func (ExtractLocalVariableFeedback) Kind() RefactoringKind {
	return RefactoringKindExtractLocalVariable
}
func (ExtractLocalVariableFeedback) isRefactoringFeedback() {}

// ExtractMethodOptions are the options of EXTRACT_METHOD.
type ExtractMethodOptions struct {
	ReturnType   string                       `json:"returnType"`
	CreateGetter bool                         `json:"createGetter"`
	Name         string                       `json:"name"`
	Parameters   []RefactoringMethodParameter `json:"parameters"`
	ExtractAll   bool                         `json:"extractAll"`
}

func (ExtractMethodOptions) Kind() RefactoringKind { return RefactoringKindExtractMethod }
func (ExtractMethodOptions) isRefactoringOptions() {}

// ExtractMethodFeedback is the feedback of EXTRACT_METHOD.
type ExtractMethodFeedback struct {
	Offset          int                          `json:"offset"`
	Length          int                          `json:"length"`
	ReturnType      string                       `json:"returnType"`
	Names           []string                     `json:"names"`
	CanCreateGetter bool                         `json:"canCreateGetter"`
	Parameters      []RefactoringMethodParameter `json:"parameters"`
	Offsets         []int                        `json:"offsets"`
	Lengths         []int                        `json:"lengths"`
}

func (ExtractMethodFeedback) Kind() RefactoringKind  { return RefactoringKindExtractMethod }
func (ExtractMethodFeedback) isRefactoringFeedback() {}

// ExtractWidgetOptions are the options of EXTRACT_WIDGET.
type ExtractWidgetOptions struct {
	Name string `json:"name"`
}

func (ExtractWidgetOptions) Kind() RefactoringKind { return RefactoringKindExtractWidget }
func (ExtractWidgetOptions) isRefactoringOptions() {}

// ExtractWidgetFeedback is the feedback of EXTRACT_WIDGET. The server sends an
// empty object.
type ExtractWidgetFeedback struct{}

func (ExtractWidgetFeedback) Kind() RefactoringKind  { return RefactoringKindExtractWidget }
func (ExtractWidgetFeedback) isRefactoringFeedback() {}

// InlineLocalVariableFeedback is the feedback of INLINE_LOCAL_VARIABLE.
type InlineLocalVariableFeedback struct {
	Name        string `json:"name"`
	Occurrences int    `json:"occurrences"`
}

func (InlineLocalVariableFeedback) Kind() RefactoringKind {
	return RefactoringKindInlineLocalVariable
}
func (InlineLocalVariableFeedback) isRefactoringFeedback() {}

// InlineMethodOptions are the options of INLINE_METHOD.
type InlineMethodOptions struct {
	DeleteSource bool `json:"deleteSource"`
	InlineAll    bool `json:"inlineAll"`
}

func (InlineMethodOptions) Kind() RefactoringKind { return RefactoringKindInlineMethod }
func (InlineMethodOptions) isRefactoringOptions() {}

// InlineMethodFeedback is the feedback of INLINE_METHOD.
type InlineMethodFeedback struct {
	ClassName     *string `json:"className,omitempty"`
	MethodName    string  `json:"methodName"`
	IsDeclaration bool    `json:"isDeclaration"`
}

func (InlineMethodFeedback) Kind() RefactoringKind  { return RefactoringKindInlineMethod }
func (InlineMethodFeedback) isRefactoringFeedback() {}

// MoveFileOptions are the options of MOVE_FILE.
type MoveFileOptions struct {
	NewFile string `json:"newFile"`
}

func (MoveFileOptions) Kind() RefactoringKind { return RefactoringKindMoveFile }
func (MoveFileOptions) isRefactoringOptions() {}

// RenameOptions are the options of RENAME.
type RenameOptions struct {
	NewName string `json:"newName"`
}

func (RenameOptions) Kind() RefactoringKind { return RefactoringKindRename }
func (RenameOptions) isRefactoringOptions() {}

// RenameFeedback is the feedback of RENAME.
type RenameFeedback struct {
	Offset          int    `json:"offset"`
	Length          int    `json:"length"`
	ElementKindName string `json:"elementKindName"`
	OldName         string `json:"oldName"`
}

func (RenameFeedback) Kind() RefactoringKind  { return RefactoringKindRename }
func (RenameFeedback) isRefactoringFeedback() {}

// Variant describes the payload shapes selected by one refactoring kind.
type Variant struct {
	Kind        RefactoringKind
	NewOptions  func() RefactoringOptions
	NewFeedback func() RefactoringFeedback
}

func noOptions() RefactoringOptions   { return NoOptions{} }
func noFeedback() RefactoringFeedback { return NoFeedback{} }

// variants is the single dispatch table from kind to payload shapes. It is
// built once and only read afterwards.
var variants = map[RefactoringKind]Variant{
	RefactoringKindConvertGetterToMethod: {
		NewOptions:  noOptions,
		NewFeedback: noFeedback,
	},
	RefactoringKindConvertMethodToGetter: {
		NewOptions:  noOptions,
		NewFeedback: noFeedback,
	},
	RefactoringKindExtractLocalVariable: {
		NewOptions:  func() RefactoringOptions { return &ExtractLocalVariableOptions{} },
		NewFeedback: func() RefactoringFeedback { return &ExtractLocalVariableFeedback{} },
	},
	RefactoringKindExtractMethod: {
		NewOptions:  func() RefactoringOptions { return &ExtractMethodOptions{} },
		NewFeedback: func() RefactoringFeedback { return &ExtractMethodFeedback{} },
	},
	RefactoringKindExtractWidget: {
		NewOptions:  func() RefactoringOptions { return &ExtractWidgetOptions{} },
		NewFeedback: func() RefactoringFeedback { return &ExtractWidgetFeedback{} },
	},
	RefactoringKindInlineLocalVariable: {
		NewOptions:  noOptions,
		NewFeedback: func() RefactoringFeedback { return &InlineLocalVariableFeedback{} },
	},
	RefactoringKindInlineMethod: {
		NewOptions:  func() RefactoringOptions { return &InlineMethodOptions{} },
		NewFeedback: func() RefactoringFeedback { return &InlineMethodFeedback{} },
	},
	RefactoringKindMoveFile: {
		NewOptions:  func() RefactoringOptions { return &MoveFileOptions{} },
		NewFeedback: noFeedback,
	},
	RefactoringKindRename: {
		NewOptions:  func() RefactoringOptions { return &RenameOptions{} },
		NewFeedback: func() RefactoringFeedback { return &RenameFeedback{} },
	},
}

func init() {
	for kind, v := range variants {
		v.Kind = kind
		variants[kind] = v
	}
	for _, t := range refactoringKinds.tokens {
		if _, ok := variants[RefactoringKind(t.Value)]; !ok {
			panic(fmt.Sprintf("protocol: refactoring kind %s has no variant", t.Value))
		}
	}
}

// ResolveVariant returns the payload shapes the kind token selects within a
// family. There is no fallback: an unknown token is an *UnknownKindError.
func ResolveVariant(family Family, token string) (Variant, error) {
	if family != FamilyOptions && family != FamilyFeedback {
		return Variant{}, fmt.Errorf("protocol: unknown payload family %q", family)
	}
	if _, err := refactoringKinds.Check(token); err != nil {
		return Variant{}, &UnknownKindError{Family: family, Token: token}
	}
	return variants[RefactoringKind(token)], nil
}

// DecodeOptions decodes the options payload selected by kind. An empty or
// null payload is read as {}, so it only succeeds for shapes without required
// fields.
func DecodeOptions(kind RefactoringKind, raw json.RawMessage, opts ...DecodeOption) (RefactoringOptions, error) {
	v, err := ResolveVariant(FamilyOptions, string(kind))
	if err != nil {
		return nil, err
	}
	target := v.NewOptions()
	if err := decodePayload(raw, target, opts); err != nil {
		return nil, &InvalidVariantPayloadError{Kind: kind, Family: FamilyOptions, Cause: err}
	}
	return deref(target).(RefactoringOptions), nil
}

// DecodeFeedback decodes the feedback payload selected by kind.
func DecodeFeedback(kind RefactoringKind, raw json.RawMessage, opts ...DecodeOption) (RefactoringFeedback, error) {
	v, err := ResolveVariant(FamilyFeedback, string(kind))
	if err != nil {
		return nil, err
	}
	target := v.NewFeedback()
	if err := decodePayload(raw, target, opts); err != nil {
		return nil, &InvalidVariantPayloadError{Kind: kind, Family: FamilyFeedback, Cause: err}
	}
	return deref(target).(RefactoringFeedback), nil
}

// EncodeOptions encodes an options payload. Nil encodes as null.
func EncodeOptions(o RefactoringOptions) ([]byte, error) {
	return Encode(o)
}

// EncodeFeedback encodes a feedback payload. Nil encodes as null.
func EncodeFeedback(f RefactoringFeedback) ([]byte, error) {
	return Encode(f)
}

func decodePayload(raw json.RawMessage, target any, opts []DecodeOption) error {
	if shapeOf(raw) == "null" {
		raw = json.RawMessage("{}")
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer {
		return Decode(raw, reflect.New(rv.Type()).Interface(), opts...)
	}
	return Decode(raw, target, opts...)
}

// deref unwraps the pointer the decoder filled so payloads are held by value.
func deref(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		return rv.Elem().Interface()
	}
	return v
}
