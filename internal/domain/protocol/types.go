package protocol

// Position is a location within a file, expressed as a character offset.
type Position struct {
	File   string `json:"file"`
	Offset int    `json:"offset"`
}

// Location is a range of characters within a file, with both offset and
// line/column coordinates.
type Location struct {
	File        string `json:"file"`
	Offset      int    `json:"offset"`
	Length      int    `json:"length"`
	StartLine   int    `json:"startLine"`
	StartColumn int    `json:"startColumn"`
	EndLine     *int   `json:"endLine,omitempty"`
	EndColumn   *int   `json:"endColumn,omitempty"`
}

// SourceEdit replaces a range of characters with new text.
type SourceEdit struct {
	Offset      int     `json:"offset"`
	Length      int     `json:"length"`
	Replacement string  `json:"replacement"`
	ID          *string `json:"id,omitempty"`
}

// SourceFileEdit is the set of edits to apply to a single file. FileStamp is
// the modification stamp the edits were computed against, or -1 for a file
// that does not exist yet.
type SourceFileEdit struct {
	File      string       `json:"file"`
	FileStamp int64        `json:"fileStamp"`
	Edits     []SourceEdit `json:"edits"`
}

// LinkedEditSuggestion is a value the user may choose for a linked edit group.
type LinkedEditSuggestion struct {
	Value string                   `json:"value"`
	Kind  LinkedEditSuggestionKind `json:"kind"`
}

// LinkedEditGroup is a set of positions that must be edited together.
type LinkedEditGroup struct {
	Positions   []Position             `json:"positions"`
	Length      int                    `json:"length"`
	Suggestions []LinkedEditSuggestion `json:"suggestions"`
}

// SourceChange is a description of a set of edits that implement a single
// conceptual change.
type SourceChange struct {
	Message          string            `json:"message"`
	Edits            []SourceFileEdit  `json:"edits"`
	LinkedEditGroups []LinkedEditGroup `json:"linkedEditGroups"`
	Selection        *Position         `json:"selection,omitempty"`
	ID               *string           `json:"id,omitempty"`
}

// RefactoringProblem describes a problem that prevents or complicates a refactoring.
type RefactoringProblem struct {
	Severity RefactoringProblemSeverity `json:"severity"`
	Message  string                     `json:"message"`
	Location *Location                  `json:"location,omitempty"`
}

// RefactoringProblems is a list of problems reported for one refactoring phase.
type RefactoringProblems []RefactoringProblem

// MaxSeverity returns the most severe problem severity in the list, or "" when
// the list is empty.
func (ps RefactoringProblems) MaxSeverity() RefactoringProblemSeverity {
	var worst RefactoringProblemSeverity
	for _, p := range ps {
		worst = MaxSeverity(worst, p.Severity)
	}
	return worst
}

// RefactoringMethodParameter describes a parameter of a method being extracted.
type RefactoringMethodParameter struct {
	ID         *string                        `json:"id,omitempty"`
	Kind       RefactoringMethodParameterKind `json:"kind"`
	Type       string                         `json:"type"`
	Name       string                         `json:"name"`
	Parameters *string                        `json:"parameters,omitempty"`
}

// Element flag bits.
const (
	ElementFlagAbstract   = 0x01
	ElementFlagConst      = 0x02
	ElementFlagFinal      = 0x04
	ElementFlagStatic     = 0x08
	ElementFlagPrivate    = 0x10
	ElementFlagDeprecated = 0x20
)

// Element describes a program element.
type Element struct {
	Kind           ElementKind `json:"kind"`
	Name           string      `json:"name"`
	Location       *Location   `json:"location,omitempty"`
	Flags          int         `json:"flags"`
	Parameters     *string     `json:"parameters,omitempty"`
	ReturnType     *string     `json:"returnType,omitempty"`
	TypeParameters *string     `json:"typeParameters,omitempty"`
}

// HasFlag reports whether the given flag bit is set.
func (e Element) HasFlag(flag int) bool {
	return e.Flags&flag != 0
}

// AnalysisError is an error, warning or hint reported by the analyzer.
type AnalysisError struct {
	Severity   AnalysisErrorSeverity `json:"severity"`
	Type       AnalysisErrorType     `json:"type"`
	Location   Location              `json:"location"`
	Message    string                `json:"message"`
	Correction *string               `json:"correction,omitempty"`
	Code       string                `json:"code"`
	HasFix     *bool                 `json:"hasFix,omitempty"`
}

// FoldingRegion is a region of code that can be folded.
type FoldingRegion struct {
	Kind   FoldingKind `json:"kind"`
	Offset int         `json:"offset"`
	Length int         `json:"length"`
}

// ExecutableFile is a file that can be launched, with the way it runs.
type ExecutableFile struct {
	File string         `json:"file"`
	Kind ExecutableKind `json:"kind"`
}

// SearchResult is a single result of a search request.
type SearchResult struct {
	Location    Location         `json:"location"`
	Kind        SearchResultKind `json:"kind"`
	IsPotential bool             `json:"isPotential"`
	Path        []Element        `json:"path"`
}

// ServerLogEntry records one piece of traffic between client and server.
type ServerLogEntry struct {
	Time int64              `json:"time"`
	Kind ServerLogEntryKind `json:"kind"`
	Data string             `json:"data"`
}

// FlutterOutline is a node in the Flutter-specific outline of a file.
type FlutterOutline struct {
	Kind         FlutterOutlineKind `json:"kind"`
	Offset       int                `json:"offset"`
	Length       int                `json:"length"`
	CodeOffset   int                `json:"codeOffset"`
	CodeLength   int                `json:"codeLength"`
	Label        *string            `json:"label,omitempty"`
	DartElement  *Element           `json:"dartElement,omitempty"`
	ClassName    *string            `json:"className,omitempty"`
	VariableName *string            `json:"variableName,omitempty"`
	Children     []FlutterOutline   `json:"children,omitempty"`
}

// FlutterOutlineParams are the params of a flutter.outline notification.
type FlutterOutlineParams struct {
	File    string         `json:"file"`
	Outline FlutterOutline `json:"outline"`
}

func (FlutterOutlineParams) WireName() string { return "FlutterOutlineParams" }
