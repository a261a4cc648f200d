package telegram

import (
	"context"
	"encoding/json"
	"fmt"
)

// Method is implemented by every Bot API request value.
type Method interface {
	// APIMethod returns the remote method name, used to build the
	// request URL `https://api.telegram.org/bot<token>/<method>`.
	APIMethod() string
}

// FileMethod is a Method that may carry file uploads and must be
// sent as multipart form data.
type FileMethod interface {
	Method

	// Files returns the (field name, file) pairs that are pending
	// uploads. Fields holding a file_id or URL reference are not
	// included; they travel inside the serialized request. A nil or
	// empty map means every file field is a reference.
	Files() map[string]*InputFile
}

// Sender is the transport contract implemented by API adapters.
// Implementations hold no state shared between calls beyond the
// underlying HTTP client; concurrent use is safe and unordered.
type Sender interface {
	// SendJSON serializes m to a JSON document, posts it to the
	// method's URL and returns the raw result payload of a
	// successful response envelope.
	SendJSON(ctx context.Context, m Method) (json.RawMessage, error)

	// SendFile does the same for a file-bearing request, encoding
	// it as multipart form data.
	SendFile(ctx context.Context, m FileMethod) (json.RawMessage, error)
}

// Send dispatches a request through s and decodes the result into T.
// Requests implementing FileMethod go through SendFile, everything
// else through SendJSON. T must match the method's documented result
// type (for example User for GetMe, Message for SendMessage, bool
// for setters).
func Send[T any](ctx context.Context, s Sender, m Method) (T, error) {
	var result T

	var raw json.RawMessage
	var err error
	if fm, ok := m.(FileMethod); ok {
		raw, err = s.SendFile(ctx, fm)
	} else {
		raw, err = s.SendJSON(ctx, m)
	}
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return result, fmt.Errorf("telegram: decode %s result: %w", m.APIMethod(), err)
	}
	return result, nil
}

// APIResponse is the generic envelope returned by the Bot API.
type APIResponse[T any] struct {
	OK          bool                `json:"ok"`
	Result      T                   `json:"result,omitempty"`
	Description string              `json:"description,omitempty"`
	ErrorCode   int                 `json:"error_code,omitempty"`
	Parameters  *ResponseParameters `json:"parameters,omitempty"`
}

// ResponseParameters carries extra information about a failed request.
type ResponseParameters struct {
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
	RetryAfter      int   `json:"retry_after,omitempty"`
}

// APIError is an error reported by the Bot API itself: the HTTP
// exchange succeeded but the remote method call failed.
type APIError struct {
	Code        int    `json:"error_code"`
	Description string `json:"description"`
	RetryAfter  int    `json:"retry_after,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("telegram: %d %s (retry after %ds)", e.Code, e.Description, e.RetryAfter)
	}
	return fmt.Sprintf("telegram: %d %s", e.Code, e.Description)
}

// ParseResponse decodes a raw Bot API response body. On a successful
// envelope it returns the raw result payload; an envelope with
// ok=false always becomes an *APIError, even when a result payload
// is also present. A body that is not a valid envelope is a decode
// error.
func ParseResponse(method string, body []byte) (json.RawMessage, error) {
	var resp APIResponse[json.RawMessage]
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("telegram: decode %s response: %w", method, err)
	}

	if !resp.OK {
		apiErr := &APIError{
			Code:        resp.ErrorCode,
			Description: resp.Description,
		}
		if resp.Parameters != nil {
			apiErr.RetryAfter = resp.Parameters.RetryAfter
		}
		return nil, apiErr
	}

	return resp.Result, nil
}
