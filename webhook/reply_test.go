package webhook

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/tgwire/tgwire/telegram"
)

func TestReply_EncodesMethodField(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	m := telegram.NewSendMessage(telegram.ID(7), "hi").WithParseMode(telegram.ModeHTML)
	if err := Reply(rr, m); err != nil {
		t.Fatal(err)
	}

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var fields map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &fields); err != nil {
		t.Fatal(err)
	}
	if fields["method"] != "sendMessage" {
		t.Errorf("method = %v, want sendMessage", fields["method"])
	}
	if fields["chat_id"] != float64(7) {
		t.Errorf("chat_id = %v, want 7", fields["chat_id"])
	}
	if fields["text"] != "hi" {
		t.Errorf("text = %v, want hi", fields["text"])
	}
	if fields["parse_mode"] != "HTML" {
		t.Errorf("parse_mode = %v, want HTML", fields["parse_mode"])
	}
}

func TestReply_RejectsUploads(t *testing.T) {
	t.Parallel()

	file := telegram.NewInputFile("cat.png", []byte{1, 2, 3}, "image/png")
	m := telegram.NewSendPhoto(telegram.ID(7), telegram.UploadFile(file))

	rr := httptest.NewRecorder()
	err := Reply(rr, m)
	if !errors.Is(err, ErrReplyUpload) {
		t.Fatalf("err = %v, want ErrReplyUpload", err)
	}
	if rr.Body.Len() != 0 {
		t.Error("nothing should be written on rejection")
	}
}

func TestReply_AllowsFileReferences(t *testing.T) {
	t.Parallel()

	m := telegram.NewSendPhoto(telegram.ID(7), telegram.FileID("AgAC123"))

	rr := httptest.NewRecorder()
	if err := Reply(rr, m); err != nil {
		t.Fatal(err)
	}

	var fields map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &fields); err != nil {
		t.Fatal(err)
	}
	if fields["method"] != "sendPhoto" {
		t.Errorf("method = %v, want sendPhoto", fields["method"])
	}
	if fields["photo"] != "AgAC123" {
		t.Errorf("photo = %v, want AgAC123", fields["photo"])
	}
}
