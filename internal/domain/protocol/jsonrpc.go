package protocol

import "encoding/json"

// Request is a message sent from the client to the analysis server. Params
// are left raw so the method-specific codec can decode them.
type Request struct {
	ID     string          `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Response answers the Request with the same ID.
type Response struct {
	ID     string          `json:"id"`
	Error  *RequestError   `json:"error,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
}

// Notification is an unsolicited message from the server.
type Notification struct {
	Event  string          `json:"event"`
	Params json.RawMessage `json:"params,omitempty"`
}

// RequestError describes why a request could not be answered.
type RequestError struct {
	Code       string  `json:"code"`
	Message    string  `json:"message"`
	StackTrace *string `json:"stackTrace,omitempty"`
}

func (e *RequestError) Error() string {
	return e.Code + ": " + e.Message
}

// Request error codes the client reacts to.
const (
	ErrorCodeInvalidParameter            = "INVALID_PARAMETER"
	ErrorCodeInvalidRequest              = "INVALID_REQUEST"
	ErrorCodeRefactoringRequestCancelled = "REFACTORING_REQUEST_CANCELLED"
	ErrorCodeServerError                 = "SERVER_ERROR"
	ErrorCodeUnknownRequest              = "UNKNOWN_REQUEST"
)

// MethodEditGetRefactoring is the request whose params and result carry
// refactoring payloads.
const MethodEditGetRefactoring = "edit.getRefactoring"

// EventFlutterOutline is the notification carrying a file's Flutter outline.
const EventFlutterOutline = "flutter.outline"
