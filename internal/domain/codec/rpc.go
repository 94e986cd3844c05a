package codec

import (
	"fmt"

	"github.com/asclient/asclient/internal/domain/protocol"
)

// DecodeRequest decodes a whole edit.getRefactoring request frame and its
// params.
func DecodeRequest(data []byte, opts ...protocol.DecodeOption) (protocol.Request, Envelope, error) {
	var req protocol.Request
	if err := protocol.Decode(data, &req); err != nil {
		return protocol.Request{}, Envelope{}, err
	}
	if req.Method != protocol.MethodEditGetRefactoring {
		return protocol.Request{}, Envelope{}, fmt.Errorf("codec: unsupported method %q", req.Method)
	}
	if req.Params == nil {
		return protocol.Request{}, Envelope{}, &protocol.MissingFieldError{Type: "Request", Field: "params"}
	}
	env, err := DecodeMessage(req.Params, opts...)
	if err != nil {
		return protocol.Request{}, Envelope{}, err
	}
	return req, env, nil
}

// EncodeRequest wraps params in a request frame with the given id.
func EncodeRequest(id string, e Envelope) ([]byte, error) {
	params, err := EncodeMessage(e)
	if err != nil {
		return nil, err
	}
	return protocol.Encode(protocol.Request{
		ID:     id,
		Method: protocol.MethodEditGetRefactoring,
		Params: params,
	})
}

// DecodeResponse decodes a response frame answering a request of the given
// kind. A response carrying an error is returned as a *protocol.RequestError.
func DecodeResponse(kind protocol.RefactoringKind, data []byte, opts ...protocol.DecodeOption) (protocol.Response, Result, error) {
	var resp protocol.Response
	if err := protocol.Decode(data, &resp); err != nil {
		return protocol.Response{}, Result{}, err
	}
	if resp.Error != nil {
		return resp, Result{}, resp.Error
	}
	if resp.Result == nil {
		return protocol.Response{}, Result{}, &protocol.MissingFieldError{Type: "Response", Field: "result"}
	}
	result, err := DecodeResult(kind, resp.Result, opts...)
	if err != nil {
		return protocol.Response{}, Result{}, err
	}
	return resp, result, nil
}

// DecodeOutline decodes a flutter.outline notification. Outline kinds the
// client does not know are kept as-is unless Strict is given.
func DecodeOutline(data []byte, opts ...protocol.DecodeOption) (protocol.FlutterOutlineParams, error) {
	var n protocol.Notification
	if err := protocol.Decode(data, &n); err != nil {
		return protocol.FlutterOutlineParams{}, err
	}
	if n.Event != protocol.EventFlutterOutline {
		return protocol.FlutterOutlineParams{}, fmt.Errorf("codec: unsupported event %q", n.Event)
	}
	if n.Params == nil {
		return protocol.FlutterOutlineParams{}, &protocol.MissingFieldError{Type: "Notification", Field: "params"}
	}
	var params protocol.FlutterOutlineParams
	if err := protocol.Decode(n.Params, &params, opts...); err != nil {
		return protocol.FlutterOutlineParams{}, err
	}
	return params, nil
}
