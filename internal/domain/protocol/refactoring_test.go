package protocol

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVariant_EveryKindHasBothShapes(t *testing.T) {
	for _, token := range refactoringKinds.Tokens() {
		for _, family := range []Family{FamilyOptions, FamilyFeedback} {
			v, err := ResolveVariant(family, token.Value)
			require.NoError(t, err)
			assert.Equal(t, RefactoringKind(token.Value), v.Kind)
			assert.NotNil(t, v.NewOptions)
			assert.NotNil(t, v.NewFeedback)
		}
	}
}

func TestResolveVariant_UnknownKind(t *testing.T) {
	_, err := ResolveVariant(FamilyOptions, "NOT_A_KIND")

	var unknown *UnknownKindError
	require.True(t, errors.As(err, &unknown), "got %v", err)
	assert.Equal(t, FamilyOptions, unknown.Family)
	assert.Equal(t, "NOT_A_KIND", unknown.Token)

	_, err = ResolveVariant(FamilyFeedback, "")
	assert.True(t, errors.As(err, &unknown))
}

func TestResolveVariant_UnknownFamily(t *testing.T) {
	_, err := ResolveVariant("Nonsense", string(RefactoringKindRename))
	assert.Error(t, err)
}

func TestDecodeOptions_DispatchesOnKind(t *testing.T) {
	body := json.RawMessage(`{
		"returnType": "int",
		"createGetter": false,
		"name": "compute",
		"parameters": [{"kind": "REQUIRED", "type": "int", "name": "a"}],
		"extractAll": true
	}`)

	_, err := DecodeOptions(RefactoringKindRename, body)
	var payload *InvalidVariantPayloadError
	require.True(t, errors.As(err, &payload), "got %v", err)
	assert.Equal(t, RefactoringKindRename, payload.Kind)
	assert.Equal(t, FamilyOptions, payload.Family)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, &MissingFieldError{Type: "RenameOptions", Field: "newName"}, missing)

	options, err := DecodeOptions(RefactoringKindExtractMethod, body)
	require.NoError(t, err)
	assert.Equal(t, ExtractMethodOptions{
		ReturnType: "int",
		Name:       "compute",
		Parameters: []RefactoringMethodParameter{{
			Kind: RefactoringMethodParameterKindRequired,
			Type: "int",
			Name: "a",
		}},
		ExtractAll: true,
	}, options)
	assert.Equal(t, RefactoringKindExtractMethod, options.Kind())
}

func TestDecodeOptions_TypeMismatchIsWrapped(t *testing.T) {
	_, err := DecodeOptions(RefactoringKindRename, json.RawMessage(`{"newName": 42}`))

	var payload *InvalidVariantPayloadError
	require.True(t, errors.As(err, &payload))
	var mismatch *TypeMismatchError
	require.True(t, errors.As(payload.Cause, &mismatch))
	assert.Equal(t, "RenameOptions", mismatch.Type)
	assert.Equal(t, "newName", mismatch.Field)
}

func TestDecodeOptions_PayloadOfWrongShape(t *testing.T) {
	_, err := DecodeOptions(RefactoringKindRename, json.RawMessage(`[]`))

	var mismatch *TypeMismatchError
	require.True(t, errors.As(err, &mismatch), "got %v", err)
	assert.Empty(t, mismatch.Field)
	assert.Equal(t, "RenameOptions: expected object, got array", mismatch.Error())
	assert.Equal(t, "RefactoringOptions for RENAME: RenameOptions: expected object, got array", err.Error())
}

func TestDecodeOptions_UnknownKind(t *testing.T) {
	_, err := DecodeOptions("NOT_A_KIND", json.RawMessage(`{}`))

	var unknown *UnknownKindError
	assert.True(t, errors.As(err, &unknown))
	var payload *InvalidVariantPayloadError
	assert.False(t, errors.As(err, &payload))
}

func TestDecodeOptions_KindsWithoutOptions(t *testing.T) {
	for _, kind := range []RefactoringKind{
		RefactoringKindConvertGetterToMethod,
		RefactoringKindConvertMethodToGetter,
		RefactoringKindInlineLocalVariable,
	} {
		t.Run(string(kind), func(t *testing.T) {
			options, err := DecodeOptions(kind, nil)
			require.NoError(t, err)
			assert.Equal(t, NoOptions{}, options)

			options, err = DecodeOptions(kind, json.RawMessage(`{"ignored": 1}`))
			require.NoError(t, err)
			assert.Equal(t, NoOptions{}, options)

			_, err = DecodeOptions(kind, json.RawMessage(`"text"`))
			assert.Error(t, err)
		})
	}
}

func TestDecodeOptions_NullPayloadNeedsRequiredFields(t *testing.T) {
	_, err := DecodeOptions(RefactoringKindMoveFile, json.RawMessage(`null`))

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "newFile", missing.Field)
}

func TestDecodeFeedback(t *testing.T) {
	className := "Widget"

	tests := []struct {
		kind RefactoringKind
		body string
		want RefactoringFeedback
	}{
		{RefactoringKindRename, `{"offset": 4, "length": 3, "elementKindName": "local variable", "oldName": "foo"}`,
			RenameFeedback{Offset: 4, Length: 3, ElementKindName: "local variable", OldName: "foo"}},
		{RefactoringKindInlineLocalVariable, `{"name": "tmp", "occurrences": 2}`,
			InlineLocalVariableFeedback{Name: "tmp", Occurrences: 2}},
		{RefactoringKindInlineMethod, `{"className": "Widget", "methodName": "build", "isDeclaration": true}`,
			InlineMethodFeedback{ClassName: &className, MethodName: "build", IsDeclaration: true}},
		{RefactoringKindExtractWidget, `{}`, ExtractWidgetFeedback{}},
		{RefactoringKindMoveFile, `{}`, NoFeedback{}},
		{RefactoringKindExtractLocalVariable, `{"names": ["sum"], "offsets": [10, 30], "lengths": [5, 5]}`,
			ExtractLocalVariableFeedback{Names: []string{"sum"}, Offsets: []int{10, 30}, Lengths: []int{5, 5}}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := DecodeFeedback(tt.kind, json.RawMessage(tt.body))
			require.NoError(t, err)
			assert.True(t, Equal(tt.want, got), Diff(tt.want, got))

			out, err := EncodeFeedback(got)
			require.NoError(t, err)
			assert.JSONEq(t, tt.body, string(out))
		})
	}
}

func TestDecodeFeedback_InvalidPayload(t *testing.T) {
	_, err := DecodeFeedback(RefactoringKindRename, json.RawMessage(`{"offset": 4, "length": 3, "oldName": "foo"}`))

	var payload *InvalidVariantPayloadError
	require.True(t, errors.As(err, &payload))
	assert.Equal(t, FamilyFeedback, payload.Family)
	assert.Contains(t, err.Error(), "elementKindName")
}

func TestOptions_RoundTrip(t *testing.T) {
	tests := []struct {
		kind    RefactoringKind
		options RefactoringOptions
	}{
		{RefactoringKindConvertGetterToMethod, NoOptions{}},
		{RefactoringKindExtractLocalVariable, ExtractLocalVariableOptions{Name: "total", ExtractAll: true}},
		{RefactoringKindExtractMethod, ExtractMethodOptions{ReturnType: "void", Name: "run"}},
		{RefactoringKindExtractWidget, ExtractWidgetOptions{Name: "Header"}},
		{RefactoringKindInlineMethod, InlineMethodOptions{DeleteSource: true}},
		{RefactoringKindMoveFile, MoveFileOptions{NewFile: "/lib/b.dart"}},
		{RefactoringKindRename, RenameOptions{NewName: "bar"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			data, err := EncodeOptions(tt.options)
			require.NoError(t, err)

			got, err := DecodeOptions(tt.kind, data)
			require.NoError(t, err)
			assert.True(t, Equal(tt.options, got), Diff(tt.options, got))
		})
	}
}

func TestBaseShapesAreFungible(t *testing.T) {
	assert.True(t, Equal(NoOptions{}, NoOptions{}))
	assert.True(t, Equal(NoFeedback{}, NoFeedback{}))

	var a, b RefactoringOptions = NoOptions{}, NoOptions{}
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, RefactoringOptions(RenameOptions{})))
	assert.Equal(t, RefactoringKind(""), a.Kind())
}

func TestEncodeOptions_Nil(t *testing.T) {
	out, err := EncodeOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
