package telegram

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Chat represents a Telegram chat: a private conversation, group,
// supergroup, or channel.
type Chat struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title,omitempty"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Chat type values.
const (
	ChatPrivate    = "private"
	ChatGroup      = "group"
	ChatSupergroup = "supergroup"
	ChatChannel    = "channel"
)

// ChatID identifies a chat target: either a numeric chat id or a
// @channelusername. The zero value is invalid.
type ChatID struct {
	id       int64
	username string
}

// ID returns a ChatID for a numeric chat identifier.
func ID(id int64) ChatID {
	return ChatID{id: id}
}

// Username returns a ChatID for a channel username. The leading @ is
// added if missing.
func Username(name string) ChatID {
	if !strings.HasPrefix(name, "@") {
		name = "@" + name
	}
	return ChatID{username: name}
}

// MarshalJSON encodes the numeric form as a JSON number and the
// username form as a JSON string.
func (c ChatID) MarshalJSON() ([]byte, error) {
	if c.username != "" {
		return json.Marshal(c.username)
	}
	return []byte(strconv.FormatInt(c.id, 10)), nil
}

// UnmarshalJSON accepts either form.
func (c *ChatID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &c.username)
	}
	return json.Unmarshal(data, &c.id)
}

// String returns the username form, or the decimal id.
func (c ChatID) String() string {
	if c.username != "" {
		return c.username
	}
	return strconv.FormatInt(c.id, 10)
}

// SendMessage creates a request which will send a text message to
// this chat.
func (c *Chat) SendMessage(text string) SendMessage {
	return NewSendMessage(ID(c.ID), text)
}

// GetChat fetches up-to-date information about a chat.
// Result: Chat.
type GetChat struct {
	ChatID ChatID `json:"chat_id"`
}

// APIMethod implements Method.
func (GetChat) APIMethod() string { return "getChat" }

// LeaveChat makes the bot leave a group, supergroup or channel.
// Result: bool.
type LeaveChat struct {
	ChatID ChatID `json:"chat_id"`
}

// APIMethod implements Method.
func (LeaveChat) APIMethod() string { return "leaveChat" }

// GetChatMemberCount returns the number of members in a chat.
// Result: int.
type GetChatMemberCount struct {
	ChatID ChatID `json:"chat_id"`
}

// APIMethod implements Method.
func (GetChatMemberCount) APIMethod() string { return "getChatMemberCount" }

// SetChatTitle changes the title of a group, supergroup or channel.
// Result: bool.
type SetChatTitle struct {
	ChatID ChatID `json:"chat_id"`
	Title  string `json:"title"`
}

// APIMethod implements Method.
func (SetChatTitle) APIMethod() string { return "setChatTitle" }
