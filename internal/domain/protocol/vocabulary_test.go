package protocol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_StrictVocabularyRejectsUnknownToken(t *testing.T) {
	_, err := Validate("RefactoringKind", "NOT_A_KIND")
	require.Error(t, err)

	var unknown *UnknownEnumValueError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "RefactoringKind", unknown.Vocabulary)
	assert.Equal(t, "NOT_A_KIND", unknown.Token)
}

func TestValidate_OpenVocabularyAcceptsUnknownToken(t *testing.T) {
	token, err := Validate("FlutterOutlineKind", "FUTURE_KIND")
	require.NoError(t, err)
	assert.Equal(t, "FUTURE_KIND", token)

	assert.False(t, FlutterOutlineKind("FUTURE_KIND").Recognized())
	assert.True(t, FlutterOutlineKindNewInstance.Recognized())
}

func TestValidate_UnknownVocabulary(t *testing.T) {
	_, err := Validate("NoSuchVocabulary", "X")
	var unknown *UnknownEnumValueError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "NoSuchVocabulary", unknown.Token)
}

func TestValidate_Members(t *testing.T) {
	tests := []struct {
		vocabulary string
		token      string
		valid      bool
	}{
		{"AnalysisErrorType", "STATIC_TYPE_WARNING", true},
		{"AnalysisErrorType", "static_type_warning", false},
		{"AnalysisService", "INVALIDATE", true},
		{"CompletionMode", "SMART", true},
		{"CompletionCaseMatchingMode", "ALL_CHARS", true},
		{"CompletionService", "AVAILABLE_SUGGESTION_SETS", true},
		{"ElementKind", "UNKNOWN", true},
		{"ElementKind", "OTHER", false},
		{"ExecutableKind", "NOT_EXECUTABLE", true},
		{"FlutterService", "OUTLINE", true},
		{"FlutterWidgetPropertyEditorKind", "ENUM_LIKE", true},
		{"FlutterWidgetPropertyEditorKind", "COLOR", false},
		{"FoldingKind", "FILE_HEADER", true},
		{"GeneralAnalysisService", "ANALYZED_FILES", true},
		{"LinkedEditSuggestionKind", "TYPE", true},
		{"MessageType", "LOG", true},
		{"ParameterKind", "REQUIRED_NAMED", true},
		{"RefactoringProblemSeverity", "FATAL", true},
		{"RuntimeCompletionExpressionTypeKind", "INTERFACE", true},
		{"SearchResultKind", "UNKNOWN", true},
		{"ServerLogEntryKind", "RAW", true},
		{"ServerLogEntryKind", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.vocabulary+"/"+tt.token, func(t *testing.T) {
			token, err := Validate(tt.vocabulary, tt.token)
			if tt.valid {
				assert.NoError(t, err)
				assert.Equal(t, tt.token, token)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestVocabularies_OnlyFlutterOutlineKindIsOpen(t *testing.T) {
	for _, v := range Vocabularies() {
		assert.Equal(t, v.Name == "FlutterOutlineKind", v.Open, v.Name)
		assert.NotEmpty(t, v.Tokens(), v.Name)
	}
}

func TestVocabularies_SortedAndComplete(t *testing.T) {
	names := make([]string, 0)
	for _, v := range Vocabularies() {
		names = append(names, v.Name)
	}
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "RefactoringKind")
	assert.Contains(t, names, "RefactoringMethodParameterKind")
	assert.Len(t, names, 23)
}

func TestVocabulary_Doc(t *testing.T) {
	v, ok := Lookup("CompletionMode")
	require.True(t, ok)
	assert.Contains(t, v.Doc("SMART"), "not implemented")
	assert.Empty(t, v.Doc("NOT_A_MODE"))
}

func TestMaxSeverity(t *testing.T) {
	assert.Equal(t, RefactoringProblemSeverityFatal, MaxSeverity(RefactoringProblemSeverityFatal, RefactoringProblemSeverityError))
	assert.Equal(t, RefactoringProblemSeverityWarning, MaxSeverity(RefactoringProblemSeverityInfo, RefactoringProblemSeverityWarning))
	assert.Equal(t, RefactoringProblemSeverityInfo, MaxSeverity("", RefactoringProblemSeverityInfo))

	problems := RefactoringProblems{
		{Severity: RefactoringProblemSeverityWarning, Message: "shadowed"},
		{Severity: RefactoringProblemSeverityError, Message: "conflict"},
		{Severity: RefactoringProblemSeverityInfo, Message: "note"},
	}
	assert.Equal(t, RefactoringProblemSeverityError, problems.MaxSeverity())
	assert.Equal(t, RefactoringProblemSeverity(""), RefactoringProblems(nil).MaxSeverity())
}
