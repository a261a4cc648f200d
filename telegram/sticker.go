package telegram

// Sticker represents a sticker.
type Sticker struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	IsAnimated   bool       `json:"is_animated"`
	IsVideo      bool       `json:"is_video"`
	Thumb        *PhotoSize `json:"thumb,omitempty"`
	Emoji        string     `json:"emoji,omitempty"`
	SetName      string     `json:"set_name,omitempty"`
	FileSize     int64      `json:"file_size,omitempty"`
}

// SendSticker sends a static, animated or video sticker.
// Result: Message.
type SendSticker struct {
	ChatID              ChatID      `json:"chat_id"`
	Sticker             FileRef     `json:"sticker"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int         `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

// NewSendSticker creates a SendSticker request.
func NewSendSticker(chat ChatID, sticker FileRef) SendSticker {
	return SendSticker{ChatID: chat, Sticker: sticker}
}

// APIMethod implements Method.
func (SendSticker) APIMethod() string { return "sendSticker" }

// Files implements FileMethod.
func (m SendSticker) Files() map[string]*InputFile {
	files := make(map[string]*InputFile)
	m.Sticker.fileEntry(files, "sticker")
	return files
}
