package telegram

// CallbackQuery is an incoming callback query from an inline
// keyboard button.
type CallbackQuery struct {
	ID              string   `json:"id"`
	From            User     `json:"from"`
	Message         *Message `json:"message,omitempty"`
	InlineMessageID string   `json:"inline_message_id,omitempty"`
	ChatInstance    string   `json:"chat_instance"`
	Data            string   `json:"data,omitempty"`
}

// Answer creates an AnswerCallbackQuery request for this query.
func (q *CallbackQuery) Answer() AnswerCallbackQuery {
	return AnswerCallbackQuery{CallbackQueryID: q.ID}
}

// AnswerCallbackQuery answers a callback query. The answer is shown
// to the user as a notification or an alert.
// Result: bool.
type AnswerCallbackQuery struct {
	CallbackQueryID string `json:"callback_query_id"`
	Text            string `json:"text,omitempty"`
	ShowAlert       bool   `json:"show_alert,omitempty"`
	URL             string `json:"url,omitempty"`
	CacheTime       int    `json:"cache_time,omitempty"`
}

// WithText sets the notification text.
func (m AnswerCallbackQuery) WithText(text string) AnswerCallbackQuery {
	m.Text = text
	return m
}

// AsAlert shows the answer as an alert instead of a notification.
func (m AnswerCallbackQuery) AsAlert() AnswerCallbackQuery {
	m.ShowAlert = true
	return m
}

// APIMethod implements Method.
func (AnswerCallbackQuery) APIMethod() string { return "answerCallbackQuery" }
