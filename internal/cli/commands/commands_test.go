package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	renameParams = `{"kind": "RENAME", "file": "/a.dart", "offset": 4, "length": 3, "validateOnly": false,
		"options": {"newName": "total"}, "clientTag": "ignored"}`
	canonicalRename    = `{"kind":"RENAME","file":"/a.dart","offset":4,"length":3,"validateOnly":false,"options":{"newName":"total"}}`
	outlineWithNewKind = `{"event": "flutter.outline", "params": {"file": "/lib/main.dart", "outline": {
		"kind": "SLIVER_LIST", "offset": 0, "length": 1, "codeOffset": 0, "codeLength": 1}}}`
)

// execute runs the CLI against an empty config file location.
func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	args = append(args, "--config", filepath.Join(t.TempDir(), "config.yaml"), "--no-color")
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestCheck_Directory(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.json": renameParams,
		"bad.json":  `{"kind": "RENAME", "file": "/a.dart"}`,
	})

	code, stdout, _ := execute(t, "check", dir)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "✓ "+filepath.Join(dir, "good.json")+" (RENAME)")
	assert.Contains(t, stdout, "✗ "+filepath.Join(dir, "bad.json"))
	assert.Contains(t, stdout, `ERROR: offset: EditGetRefactoringParams: required field "offset" is missing`)
	assert.Contains(t, stdout, "Summary: 1 valid, 1 invalid, 0 warnings")
}

func TestCheck_InferredFromPath(t *testing.T) {
	dir := writeFiles(t, map[string]string{"good.json": renameParams})

	code, stdout, _ := execute(t, filepath.Join(dir, "good.json"), "--quiet")

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
}

func TestCheck_JSON(t *testing.T) {
	dir := writeFiles(t, map[string]string{"outline.json": outlineWithNewKind})

	code, stdout, _ := execute(t, "check", dir, "--json")
	require.Equal(t, 0, code)

	var out struct {
		Results map[string]struct {
			Valid    bool   `json:"valid"`
			Event    string `json:"event"`
			Warnings []struct {
				Field string `json:"field"`
			} `json:"warnings"`
		} `json:"results"`
		Summary struct {
			Total    int `json:"total"`
			Warnings int `json:"warnings"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, 1, out.Summary.Total)
	assert.Equal(t, 1, out.Summary.Warnings)

	report := out.Results[filepath.Join(dir, "outline.json")]
	assert.True(t, report.Valid)
	assert.Equal(t, "flutter.outline", report.Event)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "outline.kind", report.Warnings[0].Field)
}

func TestCheck_Strict(t *testing.T) {
	dir := writeFiles(t, map[string]string{"outline.json": outlineWithNewKind})

	code, stdout, _ := execute(t, "check", "--strict", dir)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "ERROR: params.outline.kind")

	t.Setenv("ASCLIENT_STRICT", "true")
	code, _, _ = execute(t, "check", dir)
	assert.Equal(t, 1, code)

	code, _, _ = execute(t, "check", "--strict=false", dir)
	assert.Equal(t, 0, code)
}

func TestCheck_MissingPath(t *testing.T) {
	code, _, stderr := execute(t, "check", filepath.Join(t.TempDir(), "absent"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error:")
}

func TestCheck_WritesLogFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{"bad.json": `{"kind": "SPLIT_CLASS"}`})
	logDir := t.TempDir()

	code, _, _ := execute(t, "check", dir, "--log-dir", logDir)
	require.Equal(t, 1, code)

	logs, err := filepath.Glob(filepath.Join(logDir, "*-asclient.log"))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	data, err := os.ReadFile(logs[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "SPLIT_CLASS")
	assert.Contains(t, string(data), "checked 1 files")
}

func TestCheck_Verbose(t *testing.T) {
	dir := writeFiles(t, map[string]string{"good.json": renameParams})

	code, _, stderr := execute(t, "check", dir, "--quiet", "--verbose")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "[INFO] checked 1 files")

	_, _, stderr = execute(t, "check", dir, "--quiet")
	assert.NotContains(t, stderr, "checked 1 files")
}

func TestRun_DirectoryNamedAfterCommand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"vocab", "config"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0755))
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	code, stdout, stderr := execute(t, "vocab", "RefactoringProblemSeverity")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "FATAL")
	assert.NotContains(t, stdout, "Summary:")

	code, stdout, stderr = execute(t, "config", "show")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Config:")
}

func TestVocab(t *testing.T) {
	code, stdout, _ := execute(t, "vocab")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "RefactoringKind")
	assert.Contains(t, stdout, "FlutterOutlineKind")

	code, stdout, _ = execute(t, "vocab", "CompletionMode", "--json")
	require.Equal(t, 0, code)
	var tokens []struct {
		Value string `json:"value"`
		Doc   string `json:"doc"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &tokens))
	docs := make(map[string]string)
	for _, token := range tokens {
		docs[token.Value] = token.Doc
	}
	require.Contains(t, docs, "SMART")
	assert.Contains(t, docs["SMART"], "not implemented")

	code, _, stderr := execute(t, "vocab", "NoSuchVocabulary")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error [not-found]")
}

func TestValidate(t *testing.T) {
	code, stdout, _ := execute(t, "validate", "ElementKind", "CLASS")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "✓ CLASS is a ElementKind value")

	code, stdout, _ = execute(t, "validate", "FlutterOutlineKind", "SLIVER_LIST")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "accepted because the vocabulary is open")

	code, _, stderr := execute(t, "validate", "FlutterOutlineKind", "SLIVER_LIST", "--strict")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error [unrecognized]")

	code, _, stderr = execute(t, "validate", "ElementKind", "WIDGET")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error [unknown-enum]")
	assert.Contains(t, stderr, "asclient vocab ElementKind")
}

func TestRoundtrip(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"params.json": renameParams,
		"result.json": `{"initialProblems": [], "optionsProblems": [], "finalProblems": [],
			"feedback": {"offset": 4, "length": 3, "elementKindName": "local variable", "oldName": "sum"}}`,
	})

	code, stdout, _ := execute(t, "roundtrip", filepath.Join(dir, "params.json"), "--json")
	require.Equal(t, 0, code)
	assert.Equal(t, canonicalRename+"\n", stdout)

	code, stdout, _ = execute(t, "roundtrip", filepath.Join(dir, "result.json"), "--result-kind", "RENAME", "--json")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"initialProblems":[],"optionsProblems":[],"finalProblems":[],
		"feedback":{"offset":4,"length":3,"elementKindName":"local variable","oldName":"sum"}}`, stdout)

	code, _, stderr := execute(t, "roundtrip", filepath.Join(dir, "result.json"), "--result-kind", "INLINE_METHOD")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error [invalid-payload]")
}

func TestFrame(t *testing.T) {
	dir := writeFiles(t, map[string]string{"params.json": renameParams})

	code, stdout, _ := execute(t, "frame", filepath.Join(dir, "params.json"), "--id", "7", "--json")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"id":"7","method":"edit.getRefactoring","params":`+canonicalRename+`}`, stdout)

	code, stdout, _ = execute(t, "frame", filepath.Join(dir, "params.json"), "--json")
	require.Equal(t, 0, code)
	var frame struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &frame))
	assert.Len(t, frame.ID, 36)
}

func TestConfig_InitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asclient.toml")
	var stdout, stderr bytes.Buffer

	code := run([]string{"config", "init", "--config", path, "--strict"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.FileExists(t, path)

	code = run([]string{"config", "init", "--config", path}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "already exists")

	stdout.Reset()
	code = run([]string{"config", "show", "--config", path, "--json"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	var shown struct {
		Path     string `json:"path"`
		Settings struct {
			Strict bool   `json:"strict"`
			Format string `json:"format"`
		} `json:"settings"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &shown))
	assert.Equal(t, path, shown.Path)
	assert.True(t, shown.Settings.Strict)
	assert.Equal(t, "json", shown.Settings.Format)
}

func TestConfig_ShowLogFile(t *testing.T) {
	logDir := t.TempDir()

	code, stdout, _ := execute(t, "config", "show", "--log-dir", logDir)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Log:     "+logDir+string(filepath.Separator))

	code, stdout, _ = execute(t, "config", "show")
	require.Equal(t, 0, code)
	assert.NotContains(t, stdout, "Log:     ")
}

func TestScenario(t *testing.T) {
	code, stdout, _ := execute(t, "scenario", filepath.Join("..", "..", "scenario", "testdata"))
	assert.Equal(t, 0, code, stdout)
	assert.Contains(t, stdout, "✓ refactoring params / missing kind")
	assert.Contains(t, stdout, "0 failed")

	dir := writeFiles(t, map[string]string{"broken.yaml": `
name: broken
steps:
  - name: expects success
    action: decode_params
    input: '{"kind": "RENAME"}'
`})
	code, stdout, _ = execute(t, "scenario", filepath.Join(dir, "broken.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "✗ broken / expects success")
}
