package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// recordingSender records which contract operation a request was
// dispatched to and returns a canned result payload.
type recordingSender struct {
	jsonCalls []string
	fileCalls []string
	result    json.RawMessage
	err       error
}

func (s *recordingSender) SendJSON(_ context.Context, m Method) (json.RawMessage, error) {
	s.jsonCalls = append(s.jsonCalls, m.APIMethod())
	return s.result, s.err
}

func (s *recordingSender) SendFile(_ context.Context, m FileMethod) (json.RawMessage, error) {
	s.fileCalls = append(s.fileCalls, m.APIMethod())
	return s.result, s.err
}

func TestParseResponseSuccess(t *testing.T) {
	body := []byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"X"}}`)

	raw, err := ParseResponse("getMe", body)
	if err != nil {
		t.Fatalf("ParseResponse() error: %v", err)
	}

	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if user.ID != 1 {
		t.Errorf("ID = %d, want 1", user.ID)
	}
	if !user.IsBot {
		t.Error("IsBot = false, want true")
	}
	if user.FirstName != "X" {
		t.Errorf("FirstName = %q, want %q", user.FirstName, "X")
	}
}

func TestParseResponseAPIError(t *testing.T) {
	body := []byte(`{"ok":false,"description":"Unauthorized","error_code":401}`)

	_, err := ParseResponse("getMe", body)
	if err == nil {
		t.Fatal("ParseResponse() succeeded, want error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiErr.Description != "Unauthorized" {
		t.Errorf("Description = %q, want %q", apiErr.Description, "Unauthorized")
	}
	if apiErr.Code != 401 {
		t.Errorf("Code = %d, want 401", apiErr.Code)
	}
}

func TestParseResponseErrorWinsOverResult(t *testing.T) {
	// ok=false must take the error path even when a result payload
	// is present.
	body := []byte(`{"ok":false,"description":"Bad Request","error_code":400,"result":{"id":7}}`)

	raw, err := ParseResponse("getMe", body)
	if err == nil {
		t.Fatalf("ParseResponse() returned result %s, want error", raw)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
}

func TestParseResponseRetryAfter(t *testing.T) {
	body := []byte(`{"ok":false,"description":"Too Many Requests","error_code":429,"parameters":{"retry_after":17}}`)

	_, err := ParseResponse("sendMessage", body)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiErr.RetryAfter != 17 {
		t.Errorf("RetryAfter = %d, want 17", apiErr.RetryAfter)
	}
}

func TestParseResponseMalformedBody(t *testing.T) {
	_, err := ParseResponse("getMe", []byte(`<html>bad gateway</html>`))
	if err == nil {
		t.Fatal("ParseResponse() succeeded on non-JSON body")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatal("malformed body decoded as *APIError, want decode error")
	}
}

func TestSendDispatchesJSON(t *testing.T) {
	s := &recordingSender{result: json.RawMessage(`{"message_id":5,"date":0,"chat":{"id":42,"type":"private"}}`)}

	msg, err := Send[Message](context.Background(), s, NewSendMessage(ID(42), "hi"))
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if msg.MessageID != 5 {
		t.Errorf("MessageID = %d, want 5", msg.MessageID)
	}
	if len(s.jsonCalls) != 1 || s.jsonCalls[0] != "sendMessage" {
		t.Errorf("jsonCalls = %v, want [sendMessage]", s.jsonCalls)
	}
	if len(s.fileCalls) != 0 {
		t.Errorf("fileCalls = %v, want none", s.fileCalls)
	}
}

func TestSendDispatchesFileMethods(t *testing.T) {
	s := &recordingSender{result: json.RawMessage(`{"message_id":9,"date":0,"chat":{"id":42,"type":"private"}}`)}

	photo := NewSendPhoto(ID(42), UploadFile(NewInputFile("cat.jpg", []byte("x"), "image/jpeg")))
	if _, err := Send[Message](context.Background(), s, photo); err != nil {
		t.Fatalf("Send() error: %v", err)
	}

	// A FileMethod goes through SendFile even when every file field
	// is a reference; the adapter decides the encoding.
	ref := NewSendPhoto(ID(42), FileID("AgACAgIAAxkBAAII"))
	if _, err := Send[Message](context.Background(), s, ref); err != nil {
		t.Fatalf("Send() error: %v", err)
	}

	if len(s.fileCalls) != 2 {
		t.Fatalf("fileCalls = %v, want 2 sendPhoto calls", s.fileCalls)
	}
	if len(s.jsonCalls) != 0 {
		t.Errorf("jsonCalls = %v, want none", s.jsonCalls)
	}
}

func TestSendPropagatesSenderError(t *testing.T) {
	wantErr := &APIError{Code: 403, Description: "Forbidden: bot was blocked by the user"}
	s := &recordingSender{err: wantErr}

	_, err := Send[Message](context.Background(), s, NewSendMessage(ID(1), "hi"))
	if !errors.Is(err, wantErr) {
		t.Fatalf("Send() error = %v, want %v", err, wantErr)
	}
}

func TestSendDecodeError(t *testing.T) {
	s := &recordingSender{result: json.RawMessage(`"not an object"`)}

	_, err := Send[Message](context.Background(), s, NewSendMessage(ID(1), "hi"))
	if err == nil {
		t.Fatal("Send() succeeded, want decode error")
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Code: 429, Description: "Too Many Requests", RetryAfter: 3}
	want := "telegram: 429 Too Many Requests (retry after 3s)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	err = &APIError{Code: 400, Description: "Bad Request"}
	want = "telegram: 400 Bad Request"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
