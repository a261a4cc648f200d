package telegram

import (
	"encoding/json"
	"testing"
)

func mustMarshal(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(data)
}

func TestSendMessageCanonicalEncoding(t *testing.T) {
	got := mustMarshal(t, NewSendMessage(ID(42), "hello"))
	want := `{"chat_id":42,"text":"hello"}`
	if got != want {
		t.Errorf("encoding = %s, want %s", got, want)
	}
}

func TestSendMessageBuilderChain(t *testing.T) {
	m := NewSendMessage(ID(42), "*hi*").
		WithParseMode(ModeMarkdownV2).
		ReplyTo(7).
		Silent()

	got := mustMarshal(t, m)
	want := `{"chat_id":42,"text":"*hi*","parse_mode":"MarkdownV2","disable_notification":true,"reply_to_message_id":7}`
	if got != want {
		t.Errorf("encoding = %s, want %s", got, want)
	}
}

func TestBuildersDoNotMutateReceiver(t *testing.T) {
	base := NewSendMessage(ID(1), "x")
	_ = base.WithParseMode(ModeHTML).ReplyTo(3)

	if base.ParseMode != "" {
		t.Errorf("ParseMode = %q after building a derived request, want empty", base.ParseMode)
	}
	if base.ReplyToMessageID != 0 {
		t.Errorf("ReplyToMessageID = %d, want 0", base.ReplyToMessageID)
	}
}

func TestChannelUsernameEncoding(t *testing.T) {
	got := mustMarshal(t, NewSendMessage(Username("mychannel"), "hi"))
	want := `{"chat_id":"@mychannel","text":"hi"}`
	if got != want {
		t.Errorf("encoding = %s, want %s", got, want)
	}
}

func TestSendMessageWithInlineKeyboard(t *testing.T) {
	m := NewSendMessage(ID(1), "pick").WithReplyMarkup(NewInlineKeyboard(
		[]InlineKeyboardButton{CallbackButton("Yes", "yes"), CallbackButton("No", "no")},
	))

	got := mustMarshal(t, m)
	want := `{"chat_id":1,"text":"pick","reply_markup":{"inline_keyboard":[[{"text":"Yes","callback_data":"yes"},{"text":"No","callback_data":"no"}]]}}`
	if got != want {
		t.Errorf("encoding = %s, want %s", got, want)
	}
}

func TestMessageReplyText(t *testing.T) {
	msg := &Message{
		MessageID: 11,
		Chat:      Chat{ID: 99, Type: ChatPrivate},
		Text:      "ping",
	}

	reply := msg.ReplyText("pong")
	if reply.ReplyToMessageID != 11 {
		t.Errorf("ReplyToMessageID = %d, want 11", reply.ReplyToMessageID)
	}
	got := mustMarshal(t, reply)
	want := `{"chat_id":99,"text":"pong","reply_to_message_id":11}`
	if got != want {
		t.Errorf("encoding = %s, want %s", got, want)
	}
}

func TestMessageCommand(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{
			name: "plain command",
			msg: Message{
				Text:     "/start",
				Entities: []MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}},
			},
			want: "start",
		},
		{
			name: "command with bot mention",
			msg: Message{
				Text:     "/help@my_bot now",
				Entities: []MessageEntity{{Type: "bot_command", Offset: 0, Length: 12}},
			},
			want: "help",
		},
		{
			name: "command not at start",
			msg: Message{
				Text:     "see /start",
				Entities: []MessageEntity{{Type: "bot_command", Offset: 4, Length: 6}},
			},
			want: "",
		},
		{
			name: "no entities",
			msg:  Message{Text: "hello"},
			want: "",
		},
		{
			name: "entity length beyond text",
			msg: Message{
				Text:     "/a",
				Entities: []MessageEntity{{Type: "bot_command", Offset: 0, Length: 64}},
			},
			want: "",
		},
		{
			name: "zero entity length",
			msg: Message{
				Text:     "/start",
				Entities: []MessageEntity{{Type: "bot_command", Offset: 0, Length: 0}},
			},
			want: "",
		},
		{
			name: "entity covering only the slash",
			msg: Message{
				Text:     "/start",
				Entities: []MessageEntity{{Type: "bot_command", Offset: 0, Length: 1}},
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.msg.Command(); got != tt.want {
				t.Errorf("Command() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessageRoundTrip(t *testing.T) {
	// Decoding a captured response must reproduce a value equal to
	// one constructed from the same fields.
	body := []byte(`{"message_id":3,"from":{"id":10,"is_bot":false,"first_name":"Alice"},"chat":{"id":42,"type":"private","first_name":"Alice"},"date":1700000000,"text":"hi"}`)

	var got Message
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := Message{
		MessageID: 3,
		From:      &User{ID: 10, FirstName: "Alice"},
		Chat:      Chat{ID: 42, Type: ChatPrivate, FirstName: "Alice"},
		Date:      1700000000,
		Text:      "hi",
	}

	if got.MessageID != want.MessageID || got.Date != want.Date || got.Text != want.Text {
		t.Errorf("message = %+v, want %+v", got, want)
	}
	if got.Chat != want.Chat {
		t.Errorf("chat = %+v, want %+v", got.Chat, want.Chat)
	}
	if got.From == nil || *got.From != *want.From {
		t.Errorf("from = %+v, want %+v", got.From, want.From)
	}
}
