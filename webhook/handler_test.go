package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tgwire/tgwire/telegram"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func updateBody(t *testing.T, u telegram.Update) []byte {
	t.Helper()
	body, err := json.Marshal(u)
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func TestReceiver_DeliversUpdate(t *testing.T) {
	t.Parallel()

	var got telegram.Update
	rc := NewReceiver(func(_ context.Context, _ http.ResponseWriter, u telegram.Update) {
		got = u
	}, WithLogger(testLogger()))

	body := updateBody(t, telegram.Update{
		UpdateID: 12,
		Message: &telegram.Message{
			MessageID: 3,
			Chat:      telegram.Chat{ID: 9, Type: telegram.ChatPrivate},
			Text:      "ping",
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/telegram", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	rc.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if rr.Body.String() != `{"ok":true}` {
		t.Errorf("body = %q, want %q", rr.Body.String(), `{"ok":true}`)
	}
	if got.UpdateID != 12 {
		t.Errorf("UpdateID = %d, want 12", got.UpdateID)
	}
	if got.Message == nil || got.Message.Text != "ping" {
		t.Errorf("Message = %+v, want text %q", got.Message, "ping")
	}
}

func TestReceiver_SecretToken(t *testing.T) {
	t.Parallel()

	called := false
	rc := NewReceiver(func(context.Context, http.ResponseWriter, telegram.Update) {
		called = true
	}, WithSecretToken("hunter2"), WithLogger(testLogger()))

	body := updateBody(t, telegram.Update{UpdateID: 1})

	// Missing header.
	req := httptest.NewRequest(http.MethodPost, "/telegram", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	rc.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Errorf("status without token = %d, want %d", rr.Code, http.StatusForbidden)
	}
	if called {
		t.Error("handler called without secret token")
	}

	// Wrong header.
	req = httptest.NewRequest(http.MethodPost, "/telegram", bytes.NewReader(body))
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "wrong")
	rr = httptest.NewRecorder()
	rc.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Errorf("status with wrong token = %d, want %d", rr.Code, http.StatusForbidden)
	}

	// Correct header.
	req = httptest.NewRequest(http.MethodPost, "/telegram", bytes.NewReader(body))
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "hunter2")
	rr = httptest.NewRecorder()
	rc.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("status with correct token = %d, want %d", rr.Code, http.StatusOK)
	}
	if !called {
		t.Error("handler not called with correct secret token")
	}
}

func TestReceiver_RejectsNonPost(t *testing.T) {
	t.Parallel()

	rc := NewReceiver(func(context.Context, http.ResponseWriter, telegram.Update) {
		t.Error("handler should not be called")
	}, WithLogger(testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/telegram", nil)
	rr := httptest.NewRecorder()
	rc.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestReceiver_RejectsMalformedBody(t *testing.T) {
	t.Parallel()

	rc := NewReceiver(func(context.Context, http.ResponseWriter, telegram.Update) {
		t.Error("handler should not be called")
	}, WithLogger(testLogger()))

	req := httptest.NewRequest(http.MethodPost, "/telegram", strings.NewReader("<html>"))
	rr := httptest.NewRecorder()
	rc.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestReceiver_HandlerReplySkipsAck(t *testing.T) {
	t.Parallel()

	rc := NewReceiver(func(_ context.Context, w http.ResponseWriter, u telegram.Update) {
		reply := telegram.NewSendMessage(telegram.ID(u.Message.Chat.ID), "pong")
		if err := Reply(w, reply); err != nil {
			t.Errorf("Reply: %v", err)
		}
	}, WithLogger(testLogger()))

	body := updateBody(t, telegram.Update{
		UpdateID: 2,
		Message: &telegram.Message{
			MessageID: 1,
			Chat:      telegram.Chat{ID: 44, Type: telegram.ChatPrivate},
			Text:      "ping",
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/telegram", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	rc.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var fields map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &fields); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if fields["method"] != "sendMessage" {
		t.Errorf("method = %v, want sendMessage", fields["method"])
	}
	if fields["text"] != "pong" {
		t.Errorf("text = %v, want pong", fields["text"])
	}
	if fields["ok"] != nil {
		t.Error("default acknowledgement must not be appended after a reply")
	}
}

func TestReceiver_Metrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	rc := NewReceiver(func(context.Context, http.ResponseWriter, telegram.Update) {},
		WithLogger(testLogger()), WithMetrics(m), WithSecretToken("s"))

	body := updateBody(t, telegram.Update{
		UpdateID: 5,
		Message:  &telegram.Message{MessageID: 1, Chat: telegram.Chat{ID: 1}},
	})
	req := httptest.NewRequest(http.MethodPost, "/telegram", bytes.NewReader(body))
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "s")
	rr := httptest.NewRecorder()
	rc.ServeHTTP(rr, req)

	if got := testutil.ToFloat64(m.updatesTotal.WithLabelValues(telegram.UpdateMessage)); got != 1 {
		t.Errorf("updates_total{kind=message} = %v, want 1", got)
	}

	req = httptest.NewRequest(http.MethodPost, "/telegram", bytes.NewReader(body))
	rr = httptest.NewRecorder()
	rc.ServeHTTP(rr, req)

	if got := testutil.ToFloat64(m.rejectedTotal.WithLabelValues("bad_secret")); got != 1 {
		t.Errorf("rejected_total{reason=bad_secret} = %v, want 1", got)
	}
}

func TestMount(t *testing.T) {
	t.Parallel()

	called := false
	rc := NewReceiver(func(context.Context, http.ResponseWriter, telegram.Update) {
		called = true
	}, WithLogger(testLogger()))

	r := chi.NewRouter()
	Mount(r, "/hooks/telegram", rc)

	body := updateBody(t, telegram.Update{UpdateID: 1})
	req := httptest.NewRequest(http.MethodPost, "/hooks/telegram", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !called {
		t.Error("handler was not called through the router")
	}
}
