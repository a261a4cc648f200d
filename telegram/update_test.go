package telegram

import (
	"encoding/json"
	"testing"
)

func TestUpdateKind(t *testing.T) {
	tests := []struct {
		name   string
		update Update
		want   string
	}{
		{"message", Update{UpdateID: 1, Message: &Message{}}, UpdateMessage},
		{"edited message", Update{UpdateID: 2, EditedMessage: &Message{}}, UpdateEditedMessage},
		{"channel post", Update{UpdateID: 3, ChannelPost: &Message{}}, UpdateChannelPost},
		{"callback query", Update{UpdateID: 4, CallbackQuery: &CallbackQuery{}}, UpdateCallbackQuery},
		{"unknown", Update{UpdateID: 5}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.update.Kind(); got != tt.want {
				t.Errorf("Kind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUpdateDecode(t *testing.T) {
	body := []byte(`{"update_id":818,"message":{"message_id":1,"from":{"id":2,"is_bot":false,"first_name":"A"},"chat":{"id":2,"type":"private"},"date":1700000000,"text":"/start","entities":[{"type":"bot_command","offset":0,"length":6}]}}`)

	var u Update
	if err := json.Unmarshal(body, &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.UpdateID != 818 {
		t.Errorf("UpdateID = %d, want 818", u.UpdateID)
	}
	if u.Message == nil {
		t.Fatal("Message is nil")
	}
	if got := u.Message.Command(); got != "start" {
		t.Errorf("Command() = %q, want start", got)
	}
}

func TestGetUpdatesBuilders(t *testing.T) {
	m := NewGetUpdates().
		WithOffset(819).
		WithLimit(50).
		WithTimeout(30).
		WithAllowedUpdates(UpdateMessage, UpdateCallbackQuery)

	got := mustMarshal(t, m)
	want := `{"offset":819,"limit":50,"timeout":30,"allowed_updates":["message","callback_query"]}`
	if got != want {
		t.Errorf("encoding = %s, want %s", got, want)
	}
}

func TestGetUpdatesDefaultEncoding(t *testing.T) {
	// Defaults must not appear in the canonical encoding.
	got := mustMarshal(t, NewGetUpdates())
	if got != `{}` {
		t.Errorf("encoding = %s, want {}", got)
	}
}

func TestCallbackQueryAnswer(t *testing.T) {
	q := &CallbackQuery{ID: "cbq-1", From: User{ID: 3}}

	a := q.Answer().WithText("done").AsAlert()
	if a.CallbackQueryID != "cbq-1" {
		t.Errorf("CallbackQueryID = %q, want cbq-1", a.CallbackQueryID)
	}
	got := mustMarshal(t, a)
	want := `{"callback_query_id":"cbq-1","text":"done","show_alert":true}`
	if got != want {
		t.Errorf("encoding = %s, want %s", got, want)
	}
}
