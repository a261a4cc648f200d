package telegram

// ParseMode selects how Telegram parses formatting entities in
// message text and captions.
type ParseMode string

// Supported parse modes. Markdown is the legacy mode kept for
// backward compatibility; prefer MarkdownV2.
const (
	ModeMarkdownV2 ParseMode = "MarkdownV2"
	ModeMarkdown   ParseMode = "Markdown"
	ModeHTML       ParseMode = "HTML"
)

// MessageEntity represents one special entity in a text message:
// a hashtag, URL, bot command, formatting span, and so on.
type MessageEntity struct {
	Type     string `json:"type"`
	Offset   int    `json:"offset"`
	Length   int    `json:"length"`
	URL      string `json:"url,omitempty"`
	User     *User  `json:"user,omitempty"`
	Language string `json:"language,omitempty"`
}

// ReplyMarkup is implemented by the four keyboard markup kinds:
// InlineKeyboardMarkup, ReplyKeyboardMarkup, ReplyKeyboardRemove and
// ForceReply. The set is closed by the Bot API itself.
type ReplyMarkup interface {
	replyMarkup()
}

// InlineKeyboardMarkup is an inline keyboard attached to a message.
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

func (*InlineKeyboardMarkup) replyMarkup() {}

// NewInlineKeyboard creates an inline keyboard from rows of buttons.
func NewInlineKeyboard(rows ...[]InlineKeyboardButton) *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{InlineKeyboard: rows}
}

// InlineKeyboardButton is one button of an inline keyboard. Exactly
// one of the optional fields must be set.
type InlineKeyboardButton struct {
	Text         string `json:"text"`
	URL          string `json:"url,omitempty"`
	CallbackData string `json:"callback_data,omitempty"`
}

// CallbackButton creates a button that triggers a callback query
// with the given data when pressed.
func CallbackButton(text, data string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, CallbackData: data}
}

// URLButton creates a button that opens the given URL.
func URLButton(text, url string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, URL: url}
}

// ReplyKeyboardMarkup is a custom keyboard with reply options shown
// under the message input field.
type ReplyKeyboardMarkup struct {
	Keyboard              [][]KeyboardButton `json:"keyboard"`
	ResizeKeyboard        bool               `json:"resize_keyboard,omitempty"`
	OneTimeKeyboard       bool               `json:"one_time_keyboard,omitempty"`
	InputFieldPlaceholder string             `json:"input_field_placeholder,omitempty"`
	Selective             bool               `json:"selective,omitempty"`
}

func (*ReplyKeyboardMarkup) replyMarkup() {}

// KeyboardButton is one button of a reply keyboard.
type KeyboardButton struct {
	Text            string `json:"text"`
	RequestContact  bool   `json:"request_contact,omitempty"`
	RequestLocation bool   `json:"request_location,omitempty"`
}

// ReplyKeyboardRemove removes the current custom keyboard.
type ReplyKeyboardRemove struct {
	RemoveKeyboard bool `json:"remove_keyboard"`
	Selective      bool `json:"selective,omitempty"`
}

func (*ReplyKeyboardRemove) replyMarkup() {}

// RemoveKeyboard creates a markup value that removes the custom
// keyboard for the targeted users.
func RemoveKeyboard() *ReplyKeyboardRemove {
	return &ReplyKeyboardRemove{RemoveKeyboard: true}
}

// ForceReply makes Telegram clients display a reply interface to
// the user, as if they had selected the bot's message and tapped
// Reply.
type ForceReply struct {
	ForceReply            bool   `json:"force_reply"`
	InputFieldPlaceholder string `json:"input_field_placeholder,omitempty"`
	Selective             bool   `json:"selective,omitempty"`
}

func (*ForceReply) replyMarkup() {}
