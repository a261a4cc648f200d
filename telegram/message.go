package telegram

// Message represents a Telegram message.
type Message struct {
	MessageID       int             `json:"message_id"`
	From            *User           `json:"from,omitempty"`
	SenderChat      *Chat           `json:"sender_chat,omitempty"`
	Date            int64           `json:"date"`
	Chat            Chat            `json:"chat"`
	ForwardFrom     *User           `json:"forward_from,omitempty"`
	ForwardFromChat *Chat           `json:"forward_from_chat,omitempty"`
	ReplyToMessage  *Message        `json:"reply_to_message,omitempty"`
	EditDate        int64           `json:"edit_date,omitempty"`
	Text            string          `json:"text,omitempty"`
	Entities        []MessageEntity `json:"entities,omitempty"`
	Animation       *Animation      `json:"animation,omitempty"`
	Audio           *Audio          `json:"audio,omitempty"`
	Document        *Document       `json:"document,omitempty"`
	Photo           []PhotoSize     `json:"photo,omitempty"`
	Sticker         *Sticker        `json:"sticker,omitempty"`
	Video           *Video          `json:"video,omitempty"`
	VideoNote       *VideoNote      `json:"video_note,omitempty"`
	Voice           *Voice          `json:"voice,omitempty"`
	Caption         string          `json:"caption,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
	Contact         *Contact        `json:"contact,omitempty"`
	Dice            *Dice           `json:"dice,omitempty"`
	Location        *Location       `json:"location,omitempty"`
	Venue           *Venue          `json:"venue,omitempty"`
	NewChatMembers  []User          `json:"new_chat_members,omitempty"`
	LeftChatMember  *User           `json:"left_chat_member,omitempty"`
	PinnedMessage   *Message        `json:"pinned_message,omitempty"`
}

// ReplyText creates a SendMessage request that replies to this
// message with the given text.
func (m *Message) ReplyText(text string) SendMessage {
	return NewSendMessage(ID(m.Chat.ID), text).ReplyTo(m.MessageID)
}

// Command returns the bot command this message starts with, without
// the leading slash and any @botname suffix, or "" if the message is
// not a command. Entity offsets come from the wire and are not
// trusted: out-of-range lengths yield "".
func (m *Message) Command() string {
	for _, e := range m.Entities {
		if e.Type == "bot_command" && e.Offset == 0 {
			if e.Length <= 1 || e.Length > len(m.Text) {
				return ""
			}
			cmd := m.Text[1:e.Length]
			for i := 0; i < len(cmd); i++ {
				if cmd[i] == '@' {
					return cmd[:i]
				}
			}
			return cmd
		}
	}
	return ""
}

// MessageID is the result of methods that return only a message
// identifier, such as copyMessage.
type MessageID struct {
	MessageID int `json:"message_id"`
}

// Location represents a point on the map.
type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Contact represents a phone contact.
type Contact struct {
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	UserID      int64  `json:"user_id,omitempty"`
	VCard       string `json:"vcard,omitempty"`
}

// Venue represents a venue.
type Venue struct {
	Location     Location `json:"location"`
	Title        string   `json:"title"`
	Address      string   `json:"address"`
	FoursquareID string   `json:"foursquare_id,omitempty"`
}

// Dice represents an animated emoji with a random value.
type Dice struct {
	Emoji string `json:"emoji"`
	Value int    `json:"value"`
}

// SendMessage sends a text message.
// Result: Message.
type SendMessage struct {
	ChatID                ChatID          `json:"chat_id"`
	Text                  string          `json:"text"`
	ParseMode             ParseMode       `json:"parse_mode,omitempty"`
	Entities              []MessageEntity `json:"entities,omitempty"`
	DisableWebPagePreview bool            `json:"disable_web_page_preview,omitempty"`
	DisableNotification   bool            `json:"disable_notification,omitempty"`
	ReplyToMessageID      int             `json:"reply_to_message_id,omitempty"`
	ReplyMarkup           ReplyMarkup     `json:"reply_markup,omitempty"`
}

// NewSendMessage creates a SendMessage request.
func NewSendMessage(chat ChatID, text string) SendMessage {
	return SendMessage{ChatID: chat, Text: text}
}

// WithParseMode sets the parse mode.
func (m SendMessage) WithParseMode(mode ParseMode) SendMessage {
	m.ParseMode = mode
	return m
}

// WithReplyMarkup attaches a keyboard markup.
func (m SendMessage) WithReplyMarkup(markup ReplyMarkup) SendMessage {
	m.ReplyMarkup = markup
	return m
}

// ReplyTo marks the message as a reply to another message.
func (m SendMessage) ReplyTo(messageID int) SendMessage {
	m.ReplyToMessageID = messageID
	return m
}

// Silent disables the delivery notification.
func (m SendMessage) Silent() SendMessage {
	m.DisableNotification = true
	return m
}

// WithoutWebPagePreview disables link previews for links in the
// message text.
func (m SendMessage) WithoutWebPagePreview() SendMessage {
	m.DisableWebPagePreview = true
	return m
}

// APIMethod implements Method.
func (SendMessage) APIMethod() string { return "sendMessage" }

// ForwardMessage forwards a message of any kind.
// Result: Message.
type ForwardMessage struct {
	ChatID              ChatID `json:"chat_id"`
	FromChatID          ChatID `json:"from_chat_id"`
	MessageID           int    `json:"message_id"`
	DisableNotification bool   `json:"disable_notification,omitempty"`
}

// APIMethod implements Method.
func (ForwardMessage) APIMethod() string { return "forwardMessage" }

// CopyMessage copies a message without a link back to the original.
// Result: MessageID.
type CopyMessage struct {
	ChatID              ChatID      `json:"chat_id"`
	FromChatID          ChatID      `json:"from_chat_id"`
	MessageID           int         `json:"message_id"`
	Caption             string      `json:"caption,omitempty"`
	ParseMode           ParseMode   `json:"parse_mode,omitempty"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int         `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

// APIMethod implements Method.
func (CopyMessage) APIMethod() string { return "copyMessage" }

// EditMessageText edits the text of a previously sent message.
// Result: Message.
type EditMessageText struct {
	ChatID                ChatID                `json:"chat_id"`
	MessageID             int                   `json:"message_id"`
	Text                  string                `json:"text"`
	ParseMode             ParseMode             `json:"parse_mode,omitempty"`
	Entities              []MessageEntity       `json:"entities,omitempty"`
	DisableWebPagePreview bool                  `json:"disable_web_page_preview,omitempty"`
	ReplyMarkup           *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// NewEditMessageText creates an EditMessageText request.
func NewEditMessageText(chat ChatID, messageID int, text string) EditMessageText {
	return EditMessageText{ChatID: chat, MessageID: messageID, Text: text}
}

// APIMethod implements Method.
func (EditMessageText) APIMethod() string { return "editMessageText" }

// EditMessageCaption edits the caption of a media message.
// Result: Message.
type EditMessageCaption struct {
	ChatID      ChatID                `json:"chat_id"`
	MessageID   int                   `json:"message_id"`
	Caption     string                `json:"caption,omitempty"`
	ParseMode   ParseMode             `json:"parse_mode,omitempty"`
	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// APIMethod implements Method.
func (EditMessageCaption) APIMethod() string { return "editMessageCaption" }

// DeleteMessage deletes a message. Bots can delete outgoing messages
// in any chat and incoming messages in private chats.
// Result: bool.
type DeleteMessage struct {
	ChatID    ChatID `json:"chat_id"`
	MessageID int    `json:"message_id"`
}

// APIMethod implements Method.
func (DeleteMessage) APIMethod() string { return "deleteMessage" }

// SendLocation sends a point on the map.
// Result: Message.
type SendLocation struct {
	ChatID              ChatID      `json:"chat_id"`
	Latitude            float64     `json:"latitude"`
	Longitude           float64     `json:"longitude"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int         `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

// APIMethod implements Method.
func (SendLocation) APIMethod() string { return "sendLocation" }

// SendContact sends a phone contact.
// Result: Message.
type SendContact struct {
	ChatID              ChatID      `json:"chat_id"`
	PhoneNumber         string      `json:"phone_number"`
	FirstName           string      `json:"first_name"`
	LastName            string      `json:"last_name,omitempty"`
	VCard               string      `json:"vcard,omitempty"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int         `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

// APIMethod implements Method.
func (SendContact) APIMethod() string { return "sendContact" }

// SendDice sends an animated emoji that displays a random value.
// Result: Message.
type SendDice struct {
	ChatID              ChatID `json:"chat_id"`
	Emoji               string `json:"emoji,omitempty"`
	DisableNotification bool   `json:"disable_notification,omitempty"`
	ReplyToMessageID    int    `json:"reply_to_message_id,omitempty"`
}

// APIMethod implements Method.
func (SendDice) APIMethod() string { return "sendDice" }

// ChatAction is a chat action shown to users while the bot prepares
// a response.
type ChatAction string

// Chat action values.
const (
	ActionTyping         ChatAction = "typing"
	ActionUploadPhoto    ChatAction = "upload_photo"
	ActionRecordVideo    ChatAction = "record_video"
	ActionUploadVideo    ChatAction = "upload_video"
	ActionRecordVoice    ChatAction = "record_voice"
	ActionUploadVoice    ChatAction = "upload_voice"
	ActionUploadDocument ChatAction = "upload_document"
	ActionFindLocation   ChatAction = "find_location"
)

// SendChatAction tells the user that something is happening on the
// bot's side. The status is shown for 5 seconds or less.
// Result: bool.
type SendChatAction struct {
	ChatID ChatID     `json:"chat_id"`
	Action ChatAction `json:"action"`
}

// APIMethod implements Method.
func (SendChatAction) APIMethod() string { return "sendChatAction" }
