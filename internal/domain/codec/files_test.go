package codec_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/asclient/asclient/internal/domain/codec"
	"github.com/asclient/asclient/internal/domain/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const renameParams = `{"kind": "RENAME", "file": "/a.dart", "offset": 4, "length": 3, "validateOnly": false, "options": {"newName": "total"}}`

const outlineNotification = `{"event": "flutter.outline", "params": {"file": "/lib/main.dart", "outline": {
	"kind": "FUTURE_KIND", "offset": 0, "length": 1, "codeOffset": 0, "codeLength": 1}}}`

func TestCheck(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		strict       bool
		wantValid    bool
		wantKind     protocol.RefactoringKind
		wantField    string
		wantWarnings int
	}{
		{
			name:      "bare params",
			input:     renameParams,
			wantValid: true,
			wantKind:  protocol.RefactoringKindRename,
		},
		{
			name:      "request frame",
			input:     `{"id": "1", "method": "edit.getRefactoring", "params": ` + renameParams + `}`,
			wantValid: true,
			wantKind:  protocol.RefactoringKindRename,
		},
		{
			name:      "request and result",
			input:     `{"request": ` + renameParams + `, "result": {"initialProblems": [], "optionsProblems": [], "finalProblems": []}}`,
			wantValid: true,
			wantKind:  protocol.RefactoringKindRename,
		},
		{
			name:      "bad result feedback",
			input:     `{"request": ` + renameParams + `, "result": {"initialProblems": [], "optionsProblems": [], "finalProblems": [], "feedback": {"offset": 1}}}`,
			wantKind:  protocol.RefactoringKindRename,
			wantField: "result.feedback.length",
		},
		{
			name:         "response with server error",
			input:        `{"request": ` + renameParams + `, "response": {"id": "1", "error": {"code": "SERVER_ERROR", "message": "boom"}}}`,
			wantValid:    true,
			wantKind:     protocol.RefactoringKindRename,
			wantWarnings: 1,
		},
		{
			name:      "missing kind",
			input:     `{"file": "/a.dart"}`,
			wantField: "kind",
		},
		{
			name:      "nested request with unknown kind",
			input:     `{"request": {"kind": "SPLIT_CLASS"}}`,
			wantField: "request.kind",
		},
		{
			name:      "options of the wrong shape",
			input:     `{"kind": "MOVE_FILE", "file": "/a.dart", "offset": 0, "length": 0, "validateOnly": true, "options": {"newFile": 1}}`,
			wantField: "options.newFile",
		},
		{
			name:      "not json",
			input:     `{"kind": `,
			wantField: "json",
		},
		{
			name:         "outline with unknown kind",
			input:        outlineNotification,
			wantValid:    true,
			wantWarnings: 1,
		},
		{
			name:      "outline with unknown kind in strict mode",
			input:     outlineNotification,
			strict:    true,
			wantField: "params.outline.kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := codec.Check([]byte(tt.input), tt.strict)

			assert.Equal(t, tt.wantValid, report.Valid, "errors: %v", report.Errors)
			assert.Equal(t, tt.wantKind, report.Kind)
			assert.Len(t, report.Warnings, tt.wantWarnings)
			if tt.wantField != "" {
				require.Len(t, report.Errors, 1)
				assert.Equal(t, tt.wantField, report.Errors[0].Field)
			} else {
				assert.Empty(t, report.Errors)
			}
		})
	}
}

func TestFieldOf(t *testing.T) {
	err := &protocol.InvalidVariantPayloadError{
		Kind:   protocol.RefactoringKindRename,
		Family: protocol.FamilyFeedback,
		Cause:  &protocol.MissingFieldError{Type: "RenameFeedback", Field: "oldName"},
	}
	assert.Equal(t, "feedback.oldName", codec.FieldOf(err))
	assert.Equal(t, "kind", codec.FieldOf(&protocol.UnknownKindError{Family: protocol.FamilyOptions, Token: "X"}))
	assert.Equal(t, "", codec.FieldOf(errors.New("plain")))
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rename.json")
	require.NoError(t, os.WriteFile(path, []byte(renameParams), 0644))

	report, err := codec.CheckFile(path, false)
	require.NoError(t, err)
	assert.True(t, report.Valid)

	_, err = codec.CheckFile(filepath.Join(dir, "missing.json"), false)
	assert.Error(t, err)
}

func TestCheckDirectory(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"good.json":    renameParams,
		"bad.json":     `{"kind": "RENAME"}`,
		"outline.json": outlineNotification,
		"notes.txt":    "not checked",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0755))

	reports, err := codec.CheckDirectory(dir, false)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.True(t, reports["good.json"].Valid)
	assert.False(t, reports["bad.json"].Valid)
	assert.True(t, reports["outline.json"].Valid)
	assert.Equal(t, protocol.EventFlutterOutline, reports["outline.json"].Event)

	_, err = codec.CheckDirectory(filepath.Join(dir, "absent"), false)
	assert.Error(t, err)
}
