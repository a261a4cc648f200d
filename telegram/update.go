package telegram

// Update represents an incoming update. At most one of the optional
// fields is present in any given update.
type Update struct {
	UpdateID          int            `json:"update_id"`
	Message           *Message       `json:"message,omitempty"`
	EditedMessage     *Message       `json:"edited_message,omitempty"`
	ChannelPost       *Message       `json:"channel_post,omitempty"`
	EditedChannelPost *Message       `json:"edited_channel_post,omitempty"`
	CallbackQuery     *CallbackQuery `json:"callback_query,omitempty"`
}

// Update type names accepted by the allowed_updates parameter of
// GetUpdates and SetWebhook.
const (
	UpdateMessage           = "message"
	UpdateEditedMessage     = "edited_message"
	UpdateChannelPost       = "channel_post"
	UpdateEditedChannelPost = "edited_channel_post"
	UpdateCallbackQuery     = "callback_query"
)

// Kind returns the update type name of the one field that is set,
// or "" for an update carrying none of the known kinds.
func (u *Update) Kind() string {
	switch {
	case u.Message != nil:
		return UpdateMessage
	case u.EditedMessage != nil:
		return UpdateEditedMessage
	case u.ChannelPost != nil:
		return UpdateChannelPost
	case u.EditedChannelPost != nil:
		return UpdateEditedChannelPost
	case u.CallbackQuery != nil:
		return UpdateCallbackQuery
	}
	return ""
}

// GetUpdates receives incoming updates using long polling.
// Result: []Update.
type GetUpdates struct {
	Offset         int      `json:"offset,omitempty"`
	Limit          int      `json:"limit,omitempty"`
	Timeout        int      `json:"timeout,omitempty"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

// NewGetUpdates creates a GetUpdates request with default
// parameters: no offset, limit 100, short polling.
func NewGetUpdates() GetUpdates {
	return GetUpdates{}
}

// WithOffset sets the identifier of the first update to return.
// Must be one greater than the highest update id already handled.
func (m GetUpdates) WithOffset(offset int) GetUpdates {
	m.Offset = offset
	return m
}

// WithLimit limits the number of updates returned, 1-100.
func (m GetUpdates) WithLimit(limit int) GetUpdates {
	m.Limit = limit
	return m
}

// WithTimeout sets the long-polling timeout in seconds. Zero means
// short polling, which should only be used for testing.
func (m GetUpdates) WithTimeout(seconds int) GetUpdates {
	m.Timeout = seconds
	return m
}

// WithAllowedUpdates restricts the update types to receive.
func (m GetUpdates) WithAllowedUpdates(types ...string) GetUpdates {
	m.AllowedUpdates = types
	return m
}

// APIMethod implements Method.
func (GetUpdates) APIMethod() string { return "getUpdates" }
