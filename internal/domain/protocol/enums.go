package protocol

// AnalysisErrorType defines the kinds of analysis errors.
type AnalysisErrorType string

const (
	AnalysisErrorTypeCheckedModeCompileTimeError AnalysisErrorType = "CHECKED_MODE_COMPILE_TIME_ERROR"
	AnalysisErrorTypeCompileTimeError            AnalysisErrorType = "COMPILE_TIME_ERROR"
	AnalysisErrorTypeHint                        AnalysisErrorType = "HINT"
	AnalysisErrorTypeLint                        AnalysisErrorType = "LINT"
	AnalysisErrorTypeStaticTypeWarning           AnalysisErrorType = "STATIC_TYPE_WARNING"
	AnalysisErrorTypeStaticWarning               AnalysisErrorType = "STATIC_WARNING"
	AnalysisErrorTypeSyntacticError              AnalysisErrorType = "SYNTACTIC_ERROR"
	AnalysisErrorTypeTodo                        AnalysisErrorType = "TODO"
)

var analysisErrorTypes = closedVocabulary[AnalysisErrorType]("AnalysisErrorType", nil,
	AnalysisErrorTypeCheckedModeCompileTimeError,
	AnalysisErrorTypeCompileTimeError,
	AnalysisErrorTypeHint,
	AnalysisErrorTypeLint,
	AnalysisErrorTypeStaticTypeWarning,
	AnalysisErrorTypeStaticWarning,
	AnalysisErrorTypeSyntacticError,
	AnalysisErrorTypeTodo,
)

func (AnalysisErrorType) Vocabulary() *Vocabulary { return analysisErrorTypes }

// AnalysisErrorSeverity defines the possible severities of analysis errors.
type AnalysisErrorSeverity string

const (
	AnalysisErrorSeverityInfo    AnalysisErrorSeverity = "INFO"
	AnalysisErrorSeverityWarning AnalysisErrorSeverity = "WARNING"
	AnalysisErrorSeverityError   AnalysisErrorSeverity = "ERROR"
)

var analysisErrorSeverities = closedVocabulary[AnalysisErrorSeverity]("AnalysisErrorSeverity", nil,
	AnalysisErrorSeverityInfo,
	AnalysisErrorSeverityWarning,
	AnalysisErrorSeverityError,
)

func (AnalysisErrorSeverity) Vocabulary() *Vocabulary { return analysisErrorSeverities }

// AnalysisService names the per-file services a client may subscribe to.
type AnalysisService string

const (
	AnalysisServiceClosingLabels AnalysisService = "CLOSING_LABELS"
	AnalysisServiceFolding       AnalysisService = "FOLDING"
	AnalysisServiceHighlights    AnalysisService = "HIGHLIGHTS"
	AnalysisServiceImplemented   AnalysisService = "IMPLEMENTED"
	AnalysisServiceInvalidate    AnalysisService = "INVALIDATE"
	AnalysisServiceNavigation    AnalysisService = "NAVIGATION"
	AnalysisServiceOccurrences   AnalysisService = "OCCURRENCES"
	AnalysisServiceOutline       AnalysisService = "OUTLINE"
	AnalysisServiceOverrides     AnalysisService = "OVERRIDES"
)

var analysisServices = closedVocabulary("AnalysisService", map[AnalysisService]string{
	AnalysisServiceInvalidate: "Not currently implemented; will become a general analysis service.",
},
	AnalysisServiceClosingLabels,
	AnalysisServiceFolding,
	AnalysisServiceHighlights,
	AnalysisServiceImplemented,
	AnalysisServiceInvalidate,
	AnalysisServiceNavigation,
	AnalysisServiceOccurrences,
	AnalysisServiceOutline,
	AnalysisServiceOverrides,
)

func (AnalysisService) Vocabulary() *Vocabulary { return analysisServices }

// CompletionService names the completion services a client may subscribe to.
type CompletionService string

const (
	CompletionServiceAvailableSuggestionSets CompletionService = "AVAILABLE_SUGGESTION_SETS"
)

var completionServices = closedVocabulary("CompletionService", map[CompletionService]string{
	CompletionServiceAvailableSuggestionSets: "The client will receive availableSuggestions notifications once subscribed.",
},
	CompletionServiceAvailableSuggestionSets,
)

func (CompletionService) Vocabulary() *Vocabulary { return completionServices }

// FlutterService names the Flutter services a client may subscribe to.
type FlutterService string

const (
	FlutterServiceOutline FlutterService = "OUTLINE"
)

var flutterServices = closedVocabulary[FlutterService]("FlutterService", nil, FlutterServiceOutline)

func (FlutterService) Vocabulary() *Vocabulary { return flutterServices }

// CompletionSuggestionKind describes the type of completion being suggested.
type CompletionSuggestionKind string

const (
	CompletionSuggestionKindArgumentList     CompletionSuggestionKind = "ARGUMENT_LIST"
	CompletionSuggestionKindImport           CompletionSuggestionKind = "IMPORT"
	CompletionSuggestionKindIdentifier       CompletionSuggestionKind = "IDENTIFIER"
	CompletionSuggestionKindInvocation       CompletionSuggestionKind = "INVOCATION"
	CompletionSuggestionKindKeyword          CompletionSuggestionKind = "KEYWORD"
	CompletionSuggestionKindNamedArgument    CompletionSuggestionKind = "NAMED_ARGUMENT"
	CompletionSuggestionKindOptionalArgument CompletionSuggestionKind = "OPTIONAL_ARGUMENT"
	CompletionSuggestionKindOverride         CompletionSuggestionKind = "OVERRIDE"
	CompletionSuggestionKindParameter        CompletionSuggestionKind = "PARAMETER"
	CompletionSuggestionKindPackageName      CompletionSuggestionKind = "PACKAGE_NAME"
)

var completionSuggestionKinds = closedVocabulary("CompletionSuggestionKind", map[CompletionSuggestionKind]string{
	CompletionSuggestionKindArgumentList: "A list of arguments for the method or function being invoked.",
	CompletionSuggestionKindIdentifier:   "The element identifier should be inserted at the completion location.",
	CompletionSuggestionKindInvocation:   "The element is being invoked at the completion location.",
	CompletionSuggestionKindPackageName:  "The name of a pub package is being suggested.",
},
	CompletionSuggestionKindArgumentList,
	CompletionSuggestionKindImport,
	CompletionSuggestionKindIdentifier,
	CompletionSuggestionKindInvocation,
	CompletionSuggestionKindKeyword,
	CompletionSuggestionKindNamedArgument,
	CompletionSuggestionKindOptionalArgument,
	CompletionSuggestionKindOverride,
	CompletionSuggestionKindParameter,
	CompletionSuggestionKindPackageName,
)

func (CompletionSuggestionKind) Vocabulary() *Vocabulary { return completionSuggestionKinds }

// CompletionMode selects how much work the server does for a completion request.
type CompletionMode string

const (
	CompletionModeBasic CompletionMode = "BASIC"
	CompletionModeSmart CompletionMode = "SMART"
)

var completionModes = closedVocabulary("CompletionMode", map[CompletionMode]string{
	CompletionModeBasic: "Basic code completion invocation type, and the default for this enumeration.",
	CompletionModeSmart: "Smart code completion, currently not implemented.",
},
	CompletionModeBasic,
	CompletionModeSmart,
)

func (CompletionMode) Vocabulary() *Vocabulary { return completionModes }

// CompletionCaseMatchingMode controls how suggestions are matched against the typed prefix.
type CompletionCaseMatchingMode string

const (
	CompletionCaseMatchingModeFirstChar CompletionCaseMatchingMode = "FIRST_CHAR"
	CompletionCaseMatchingModeAllChars  CompletionCaseMatchingMode = "ALL_CHARS"
	CompletionCaseMatchingModeNone      CompletionCaseMatchingMode = "NONE"
)

var completionCaseMatchingModes = closedVocabulary("CompletionCaseMatchingMode", map[CompletionCaseMatchingMode]string{
	CompletionCaseMatchingModeFirstChar: "Match the first character case only when filtering completions.",
	CompletionCaseMatchingModeAllChars:  "Match all character cases when filtering completion lists.",
	CompletionCaseMatchingModeNone:      "Do not match character cases when filtering completion lists.",
},
	CompletionCaseMatchingModeFirstChar,
	CompletionCaseMatchingModeAllChars,
	CompletionCaseMatchingModeNone,
)

func (CompletionCaseMatchingMode) Vocabulary() *Vocabulary { return completionCaseMatchingModes }

// ElementKind describes the kind of a program element.
type ElementKind string

const (
	ElementKindClass                 ElementKind = "CLASS"
	ElementKindClassTypeAlias        ElementKind = "CLASS_TYPE_ALIAS"
	ElementKindCompilationUnit       ElementKind = "COMPILATION_UNIT"
	ElementKindConstructor           ElementKind = "CONSTRUCTOR"
	ElementKindConstructorInvocation ElementKind = "CONSTRUCTOR_INVOCATION"
	ElementKindEnum                  ElementKind = "ENUM"
	ElementKindEnumConstant          ElementKind = "ENUM_CONSTANT"
	ElementKindExtension             ElementKind = "EXTENSION"
	ElementKindField                 ElementKind = "FIELD"
	ElementKindFile                  ElementKind = "FILE"
	ElementKindFunction              ElementKind = "FUNCTION"
	ElementKindFunctionInvocation    ElementKind = "FUNCTION_INVOCATION"
	ElementKindFunctionTypeAlias     ElementKind = "FUNCTION_TYPE_ALIAS"
	ElementKindGetter                ElementKind = "GETTER"
	ElementKindLabel                 ElementKind = "LABEL"
	ElementKindLibrary               ElementKind = "LIBRARY"
	ElementKindLocalVariable         ElementKind = "LOCAL_VARIABLE"
	ElementKindMethod                ElementKind = "METHOD"
	ElementKindMixin                 ElementKind = "MIXIN"
	ElementKindParameter             ElementKind = "PARAMETER"
	ElementKindPrefix                ElementKind = "PREFIX"
	ElementKindSetter                ElementKind = "SETTER"
	ElementKindTopLevelVariable      ElementKind = "TOP_LEVEL_VARIABLE"
	ElementKindTypeAlias             ElementKind = "TYPE_ALIAS"
	ElementKindTypeParameter         ElementKind = "TYPE_PARAMETER"
	ElementKindUnitTestGroup         ElementKind = "UNIT_TEST_GROUP"
	ElementKindUnitTestTest          ElementKind = "UNIT_TEST_TEST"
	ElementKindUnknown               ElementKind = "UNKNOWN"
)

var elementKinds = closedVocabulary[ElementKind]("ElementKind", nil,
	ElementKindClass,
	ElementKindClassTypeAlias,
	ElementKindCompilationUnit,
	ElementKindConstructor,
	ElementKindConstructorInvocation,
	ElementKindEnum,
	ElementKindEnumConstant,
	ElementKindExtension,
	ElementKindField,
	ElementKindFile,
	ElementKindFunction,
	ElementKindFunctionInvocation,
	ElementKindFunctionTypeAlias,
	ElementKindGetter,
	ElementKindLabel,
	ElementKindLibrary,
	ElementKindLocalVariable,
	ElementKindMethod,
	ElementKindMixin,
	ElementKindParameter,
	ElementKindPrefix,
	ElementKindSetter,
	ElementKindTopLevelVariable,
	ElementKindTypeAlias,
	ElementKindTypeParameter,
	ElementKindUnitTestGroup,
	ElementKindUnitTestTest,
	ElementKindUnknown,
)

func (ElementKind) Vocabulary() *Vocabulary { return elementKinds }

// ExecutableKind describes how a file can be launched.
type ExecutableKind string

const (
	ExecutableKindClient        ExecutableKind = "CLIENT"
	ExecutableKindEither        ExecutableKind = "EITHER"
	ExecutableKindNotExecutable ExecutableKind = "NOT_EXECUTABLE"
	ExecutableKindServer        ExecutableKind = "SERVER"
)

var executableKinds = closedVocabulary[ExecutableKind]("ExecutableKind", nil,
	ExecutableKindClient,
	ExecutableKindEither,
	ExecutableKindNotExecutable,
	ExecutableKindServer,
)

func (ExecutableKind) Vocabulary() *Vocabulary { return executableKinds }

// FlutterOutlineKind describes the kind of a Flutter outline node. New kinds
// may be added by the server at any time, so the vocabulary is open.
type FlutterOutlineKind string

const (
	FlutterOutlineKindDartElement FlutterOutlineKind = "DART_ELEMENT"
	FlutterOutlineKindGeneric     FlutterOutlineKind = "GENERIC"
	FlutterOutlineKindNewInstance FlutterOutlineKind = "NEW_INSTANCE"
	FlutterOutlineKindInvocation  FlutterOutlineKind = "INVOCATION"
	FlutterOutlineKindVariable    FlutterOutlineKind = "VARIABLE"
	FlutterOutlineKindPlaceholder FlutterOutlineKind = "PLACEHOLDER"
)

var flutterOutlineKinds = openVocabulary("FlutterOutlineKind", map[FlutterOutlineKind]string{
	FlutterOutlineKindDartElement: "A dart element declaration.",
	FlutterOutlineKindGeneric:     "A generic Flutter element, without additional information.",
	FlutterOutlineKindNewInstance: "A new instance creation.",
	FlutterOutlineKindInvocation:  "An invocation of a method, a top-level function, a function expression, etc.",
	FlutterOutlineKindVariable:    "A reference to a local variable, or a field.",
	FlutterOutlineKindPlaceholder: "The parent node has a required Widget parameter that has no argument.",
},
	FlutterOutlineKindDartElement,
	FlutterOutlineKindGeneric,
	FlutterOutlineKindNewInstance,
	FlutterOutlineKindInvocation,
	FlutterOutlineKindVariable,
	FlutterOutlineKindPlaceholder,
)

func (FlutterOutlineKind) Vocabulary() *Vocabulary { return flutterOutlineKinds }

// Recognized reports whether k is one of the kinds this client knows about.
func (k FlutterOutlineKind) Recognized() bool { return flutterOutlineKinds.Contains(string(k)) }

// FlutterWidgetPropertyEditorKind is the kind of editor a client should show for a widget property.
type FlutterWidgetPropertyEditorKind string

const (
	FlutterWidgetPropertyEditorKindBool     FlutterWidgetPropertyEditorKind = "BOOL"
	FlutterWidgetPropertyEditorKindDouble   FlutterWidgetPropertyEditorKind = "DOUBLE"
	FlutterWidgetPropertyEditorKindEnum     FlutterWidgetPropertyEditorKind = "ENUM"
	FlutterWidgetPropertyEditorKindEnumLike FlutterWidgetPropertyEditorKind = "ENUM_LIKE"
	FlutterWidgetPropertyEditorKindInt      FlutterWidgetPropertyEditorKind = "INT"
	FlutterWidgetPropertyEditorKindString   FlutterWidgetPropertyEditorKind = "STRING"
)

var flutterWidgetPropertyEditorKinds = closedVocabulary[FlutterWidgetPropertyEditorKind]("FlutterWidgetPropertyEditorKind", nil,
	FlutterWidgetPropertyEditorKindBool,
	FlutterWidgetPropertyEditorKindDouble,
	FlutterWidgetPropertyEditorKindEnum,
	FlutterWidgetPropertyEditorKindEnumLike,
	FlutterWidgetPropertyEditorKindInt,
	FlutterWidgetPropertyEditorKindString,
)

func (FlutterWidgetPropertyEditorKind) Vocabulary() *Vocabulary {
	return flutterWidgetPropertyEditorKinds
}

// FoldingKind describes the kind of a folding region.
type FoldingKind string

const (
	FoldingKindAnnotations          FoldingKind = "ANNOTATIONS"
	FoldingKindBlock                FoldingKind = "BLOCK"
	FoldingKindClassBody            FoldingKind = "CLASS_BODY"
	FoldingKindComment              FoldingKind = "COMMENT"
	FoldingKindDirectives           FoldingKind = "DIRECTIVES"
	FoldingKindDocumentationComment FoldingKind = "DOCUMENTATION_COMMENT"
	FoldingKindFileHeader           FoldingKind = "FILE_HEADER"
	FoldingKindFunctionBody         FoldingKind = "FUNCTION_BODY"
	FoldingKindInvocation           FoldingKind = "INVOCATION"
	FoldingKindLiteral              FoldingKind = "LITERAL"
)

var foldingKinds = closedVocabulary[FoldingKind]("FoldingKind", nil,
	FoldingKindAnnotations,
	FoldingKindBlock,
	FoldingKindClassBody,
	FoldingKindComment,
	FoldingKindDirectives,
	FoldingKindDocumentationComment,
	FoldingKindFileHeader,
	FoldingKindFunctionBody,
	FoldingKindInvocation,
	FoldingKindLiteral,
)

func (FoldingKind) Vocabulary() *Vocabulary { return foldingKinds }

// GeneralAnalysisService names services that are not tied to a single file.
type GeneralAnalysisService string

const (
	GeneralAnalysisServiceAnalyzedFiles GeneralAnalysisService = "ANALYZED_FILES"
)

var generalAnalysisServices = closedVocabulary[GeneralAnalysisService]("GeneralAnalysisService", nil,
	GeneralAnalysisServiceAnalyzedFiles,
)

func (GeneralAnalysisService) Vocabulary() *Vocabulary { return generalAnalysisServices }

// LinkedEditSuggestionKind describes what a linked edit suggestion stands for.
type LinkedEditSuggestionKind string

const (
	LinkedEditSuggestionKindMethod    LinkedEditSuggestionKind = "METHOD"
	LinkedEditSuggestionKindParameter LinkedEditSuggestionKind = "PARAMETER"
	LinkedEditSuggestionKindType      LinkedEditSuggestionKind = "TYPE"
	LinkedEditSuggestionKindVariable  LinkedEditSuggestionKind = "VARIABLE"
)

var linkedEditSuggestionKinds = closedVocabulary[LinkedEditSuggestionKind]("LinkedEditSuggestionKind", nil,
	LinkedEditSuggestionKindMethod,
	LinkedEditSuggestionKindParameter,
	LinkedEditSuggestionKindType,
	LinkedEditSuggestionKindVariable,
)

func (LinkedEditSuggestionKind) Vocabulary() *Vocabulary { return linkedEditSuggestionKinds }

// MessageType is the severity of a message shown to the user.
type MessageType string

const (
	MessageTypeError   MessageType = "ERROR"
	MessageTypeWarning MessageType = "WARNING"
	MessageTypeInfo    MessageType = "INFO"
	MessageTypeLog     MessageType = "LOG"
)

var messageTypes = closedVocabulary("MessageType", map[MessageType]string{
	MessageTypeLog: "A log message.",
},
	MessageTypeError,
	MessageTypeWarning,
	MessageTypeInfo,
	MessageTypeLog,
)

func (MessageType) Vocabulary() *Vocabulary { return messageTypes }

// ParameterKind describes how a parameter is passed.
type ParameterKind string

const (
	ParameterKindOptionalNamed      ParameterKind = "OPTIONAL_NAMED"
	ParameterKindOptionalPositional ParameterKind = "OPTIONAL_POSITIONAL"
	ParameterKindRequiredNamed      ParameterKind = "REQUIRED_NAMED"
	ParameterKindRequiredPositional ParameterKind = "REQUIRED_POSITIONAL"
)

var parameterKinds = closedVocabulary[ParameterKind]("ParameterKind", nil,
	ParameterKindOptionalNamed,
	ParameterKindOptionalPositional,
	ParameterKindRequiredNamed,
	ParameterKindRequiredPositional,
)

func (ParameterKind) Vocabulary() *Vocabulary { return parameterKinds }

// RefactoringMethodParameterKind describes a parameter of an extracted method.
type RefactoringMethodParameterKind string

const (
	RefactoringMethodParameterKindRequired   RefactoringMethodParameterKind = "REQUIRED"
	RefactoringMethodParameterKindPositional RefactoringMethodParameterKind = "POSITIONAL"
	RefactoringMethodParameterKindNamed      RefactoringMethodParameterKind = "NAMED"
)

var refactoringMethodParameterKinds = closedVocabulary[RefactoringMethodParameterKind]("RefactoringMethodParameterKind", nil,
	RefactoringMethodParameterKindRequired,
	RefactoringMethodParameterKindPositional,
	RefactoringMethodParameterKindNamed,
)

func (RefactoringMethodParameterKind) Vocabulary() *Vocabulary {
	return refactoringMethodParameterKinds
}

// RefactoringProblemSeverity is the severity of a refactoring problem, ordered
// from least to most severe.
type RefactoringProblemSeverity string

const (
	RefactoringProblemSeverityInfo    RefactoringProblemSeverity = "INFO"
	RefactoringProblemSeverityWarning RefactoringProblemSeverity = "WARNING"
	RefactoringProblemSeverityError   RefactoringProblemSeverity = "ERROR"
	RefactoringProblemSeverityFatal   RefactoringProblemSeverity = "FATAL"
)

var refactoringProblemSeverities = closedVocabulary("RefactoringProblemSeverity", map[RefactoringProblemSeverity]string{
	RefactoringProblemSeverityInfo:    "A minor code problem. The refactoring may proceed.",
	RefactoringProblemSeverityWarning: "A minor code problem. The user should be warned before proceeding.",
	RefactoringProblemSeverityError:   "The refactoring technically can be performed, but there is a logical problem.",
	RefactoringProblemSeverityFatal:   "A fatal error, which prevents performing the refactoring.",
},
	RefactoringProblemSeverityInfo,
	RefactoringProblemSeverityWarning,
	RefactoringProblemSeverityError,
	RefactoringProblemSeverityFatal,
)

func (RefactoringProblemSeverity) Vocabulary() *Vocabulary { return refactoringProblemSeverities }

func (s RefactoringProblemSeverity) rank() int {
	i, ok := refactoringProblemSeverities.index[string(s)]
	if !ok {
		return -1
	}
	return i
}

// MaxSeverity returns the more severe of a and b. An empty severity counts as
// less severe than INFO.
func MaxSeverity(a, b RefactoringProblemSeverity) RefactoringProblemSeverity {
	if b.rank() > a.rank() {
		return b
	}
	return a
}

// RuntimeCompletionExpressionTypeKind is the kind of a runtime completion expression type.
type RuntimeCompletionExpressionTypeKind string

const (
	RuntimeCompletionExpressionTypeKindDynamic   RuntimeCompletionExpressionTypeKind = "DYNAMIC"
	RuntimeCompletionExpressionTypeKindFunction  RuntimeCompletionExpressionTypeKind = "FUNCTION"
	RuntimeCompletionExpressionTypeKindInterface RuntimeCompletionExpressionTypeKind = "INTERFACE"
)

var runtimeCompletionExpressionTypeKinds = closedVocabulary[RuntimeCompletionExpressionTypeKind]("RuntimeCompletionExpressionTypeKind", nil,
	RuntimeCompletionExpressionTypeKindDynamic,
	RuntimeCompletionExpressionTypeKindFunction,
	RuntimeCompletionExpressionTypeKindInterface,
)

func (RuntimeCompletionExpressionTypeKind) Vocabulary() *Vocabulary {
	return runtimeCompletionExpressionTypeKinds
}

// SearchResultKind describes how a search result relates to the searched element.
type SearchResultKind string

const (
	SearchResultKindDeclaration SearchResultKind = "DECLARATION"
	SearchResultKindInvocation  SearchResultKind = "INVOCATION"
	SearchResultKindRead        SearchResultKind = "READ"
	SearchResultKindReadWrite   SearchResultKind = "READ_WRITE"
	SearchResultKindReference   SearchResultKind = "REFERENCE"
	SearchResultKindUnknown     SearchResultKind = "UNKNOWN"
	SearchResultKindWrite       SearchResultKind = "WRITE"
)

var searchResultKinds = closedVocabulary("SearchResultKind", map[SearchResultKind]string{
	SearchResultKindUnknown: "Some other kind of search result.",
},
	SearchResultKindDeclaration,
	SearchResultKindInvocation,
	SearchResultKindRead,
	SearchResultKindReadWrite,
	SearchResultKindReference,
	SearchResultKindUnknown,
	SearchResultKindWrite,
)

func (SearchResultKind) Vocabulary() *Vocabulary { return searchResultKinds }

// ServerLogEntryKind is the kind of traffic recorded in a server log entry.
type ServerLogEntryKind string

const (
	ServerLogEntryKindNotification ServerLogEntryKind = "NOTIFICATION"
	ServerLogEntryKindRaw          ServerLogEntryKind = "RAW"
	ServerLogEntryKindRequest      ServerLogEntryKind = "REQUEST"
	ServerLogEntryKindResponse     ServerLogEntryKind = "RESPONSE"
)

var serverLogEntryKinds = closedVocabulary("ServerLogEntryKind", map[ServerLogEntryKind]string{
	ServerLogEntryKindRaw: "A line of unparsed output from the server.",
},
	ServerLogEntryKindNotification,
	ServerLogEntryKindRaw,
	ServerLogEntryKindRequest,
	ServerLogEntryKindResponse,
)

func (ServerLogEntryKind) Vocabulary() *Vocabulary { return serverLogEntryKinds }
