package telegram

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
)

// InputFile is a file pending upload to the Bot API.
type InputFile struct {
	// Name is the file name reported to Telegram.
	Name string
	// Data is the file contents.
	Data []byte
	// MIME is the content type of the file.
	MIME string
}

// NewInputFile creates an InputFile from in-memory contents.
func NewInputFile(name string, data []byte, mimeType string) *InputFile {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return &InputFile{Name: name, Data: data, MIME: mimeType}
}

// NewInputFileFromReader creates an InputFile by draining r.
func NewInputFileFromReader(name string, r io.Reader, mimeType string) (*InputFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("telegram: read upload %s: %w", name, err)
	}
	return NewInputFile(name, data, mimeType), nil
}

// LoadInputFile reads a local file into an InputFile. The MIME type
// is guessed from the file extension, falling back to
// application/octet-stream.
func LoadInputFile(path string) (*InputFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("telegram: read upload %s: %w", path, err)
	}
	return NewInputFile(filepath.Base(path), data, mime.TypeByExtension(filepath.Ext(path))), nil
}

// MarshalJSON encodes an InputFile as an empty string. The bytes
// never travel in a JSON body; adapters stream them as a multipart
// part instead, keyed by the field name reported via Files().
func (f *InputFile) MarshalJSON() ([]byte, error) {
	return []byte(`""`), nil
}

// FileRef references a file to send: either a file already known to
// Telegram (by file_id or HTTP URL) or an InputFile to upload.
type FileRef struct {
	ref    string
	upload *InputFile
}

// FileID returns a FileRef for a file that already exists on the
// Telegram servers, or an HTTP URL for Telegram to fetch.
func FileID(id string) FileRef {
	return FileRef{ref: id}
}

// UploadFile returns a FileRef that uploads f.
func UploadFile(f *InputFile) FileRef {
	return FileRef{upload: f}
}

// Upload returns the pending upload, or nil for the reference form.
func (r FileRef) Upload() *InputFile { return r.upload }

// IsZero reports whether the FileRef holds neither form.
func (r FileRef) IsZero() bool { return r.ref == "" && r.upload == nil }

// MarshalJSON encodes the reference form as its identifier and the
// upload form as an empty string, per the InputFile rule.
func (r FileRef) MarshalJSON() ([]byte, error) {
	if r.upload != nil {
		return r.upload.MarshalJSON()
	}
	return json.Marshal(r.ref)
}

// fileEntry adds r to files under name when it is an upload.
func (r FileRef) fileEntry(files map[string]*InputFile, name string) {
	if r.upload != nil {
		files[name] = r.upload
	}
}

// PhotoSize represents one size of a photo or a file/sticker thumbnail.
type PhotoSize struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	FileSize     int64  `json:"file_size,omitempty"`
}

// Animation represents an animation file (GIF or soundless H.264 video).
type Animation struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Duration     int        `json:"duration"`
	Thumb        *PhotoSize `json:"thumb,omitempty"`
	FileName     string     `json:"file_name,omitempty"`
	MIMEType     string     `json:"mime_type,omitempty"`
	FileSize     int64      `json:"file_size,omitempty"`
}

// Audio represents an audio file treated as music by Telegram clients.
type Audio struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Duration     int        `json:"duration"`
	Performer    string     `json:"performer,omitempty"`
	Title        string     `json:"title,omitempty"`
	FileName     string     `json:"file_name,omitempty"`
	MIMEType     string     `json:"mime_type,omitempty"`
	FileSize     int64      `json:"file_size,omitempty"`
	Thumb        *PhotoSize `json:"thumb,omitempty"`
}

// Document represents a general file.
type Document struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Thumb        *PhotoSize `json:"thumb,omitempty"`
	FileName     string     `json:"file_name,omitempty"`
	MIMEType     string     `json:"mime_type,omitempty"`
	FileSize     int64      `json:"file_size,omitempty"`
}

// Video represents a video file.
type Video struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Duration     int        `json:"duration"`
	Thumb        *PhotoSize `json:"thumb,omitempty"`
	FileName     string     `json:"file_name,omitempty"`
	MIMEType     string     `json:"mime_type,omitempty"`
	FileSize     int64      `json:"file_size,omitempty"`
}

// VideoNote represents a round video message.
type VideoNote struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Length       int        `json:"length"`
	Duration     int        `json:"duration"`
	Thumb        *PhotoSize `json:"thumb,omitempty"`
	FileSize     int64      `json:"file_size,omitempty"`
}

// Voice represents a voice note.
type Voice struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	Duration     int    `json:"duration"`
	MIMEType     string `json:"mime_type,omitempty"`
	FileSize     int64  `json:"file_size,omitempty"`
}

// File represents a file ready to be downloaded via
// `https://api.telegram.org/file/bot<token>/<file_path>`. The link
// is valid for at least one hour.
type File struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	FileSize     int64  `json:"file_size,omitempty"`
	FilePath     string `json:"file_path,omitempty"`
}

// GetFile fetches basic info about a file and prepares it for
// downloading. Bots can download files of up to 20 MB.
// Result: File.
type GetFile struct {
	FileID string `json:"file_id"`
}

// APIMethod implements Method.
func (GetFile) APIMethod() string { return "getFile" }

// SendPhoto sends a photo.
// Result: Message.
type SendPhoto struct {
	ChatID              ChatID          `json:"chat_id"`
	Photo               FileRef         `json:"photo"`
	Caption             string          `json:"caption,omitempty"`
	ParseMode           ParseMode       `json:"parse_mode,omitempty"`
	CaptionEntities     []MessageEntity `json:"caption_entities,omitempty"`
	DisableNotification bool            `json:"disable_notification,omitempty"`
	ReplyToMessageID    int             `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup     `json:"reply_markup,omitempty"`
}

// NewSendPhoto creates a SendPhoto request.
func NewSendPhoto(chat ChatID, photo FileRef) SendPhoto {
	return SendPhoto{ChatID: chat, Photo: photo}
}

// WithCaption sets the caption.
func (m SendPhoto) WithCaption(caption string) SendPhoto {
	m.Caption = caption
	return m
}

// WithParseMode sets the caption parse mode.
func (m SendPhoto) WithParseMode(mode ParseMode) SendPhoto {
	m.ParseMode = mode
	return m
}

// ReplyTo marks the photo as a reply to another message.
func (m SendPhoto) ReplyTo(messageID int) SendPhoto {
	m.ReplyToMessageID = messageID
	return m
}

// APIMethod implements Method.
func (SendPhoto) APIMethod() string { return "sendPhoto" }

// Files implements FileMethod.
func (m SendPhoto) Files() map[string]*InputFile {
	files := make(map[string]*InputFile)
	m.Photo.fileEntry(files, "photo")
	return files
}

// SendAudio sends an audio file to be displayed as music.
// Result: Message.
type SendAudio struct {
	ChatID              ChatID      `json:"chat_id"`
	Audio               FileRef     `json:"audio"`
	Caption             string      `json:"caption,omitempty"`
	ParseMode           ParseMode   `json:"parse_mode,omitempty"`
	Duration            int         `json:"duration,omitempty"`
	Performer           string      `json:"performer,omitempty"`
	Title               string      `json:"title,omitempty"`
	Thumb               FileRef     `json:"thumb,omitzero"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int         `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

// NewSendAudio creates a SendAudio request.
func NewSendAudio(chat ChatID, audio FileRef) SendAudio {
	return SendAudio{ChatID: chat, Audio: audio}
}

// WithCaption sets the caption.
func (m SendAudio) WithCaption(caption string) SendAudio {
	m.Caption = caption
	return m
}

// WithPerformer sets the performer tag.
func (m SendAudio) WithPerformer(performer string) SendAudio {
	m.Performer = performer
	return m
}

// WithTitle sets the title tag.
func (m SendAudio) WithTitle(title string) SendAudio {
	m.Title = title
	return m
}

// APIMethod implements Method.
func (SendAudio) APIMethod() string { return "sendAudio" }

// Files implements FileMethod.
func (m SendAudio) Files() map[string]*InputFile {
	files := make(map[string]*InputFile)
	m.Audio.fileEntry(files, "audio")
	m.Thumb.fileEntry(files, "thumb")
	return files
}

// SendDocument sends a general file.
// Result: Message.
type SendDocument struct {
	ChatID              ChatID      `json:"chat_id"`
	Document            FileRef     `json:"document"`
	Thumb               FileRef     `json:"thumb,omitzero"`
	Caption             string      `json:"caption,omitempty"`
	ParseMode           ParseMode   `json:"parse_mode,omitempty"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int         `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

// NewSendDocument creates a SendDocument request.
func NewSendDocument(chat ChatID, doc FileRef) SendDocument {
	return SendDocument{ChatID: chat, Document: doc}
}

// WithCaption sets the caption.
func (m SendDocument) WithCaption(caption string) SendDocument {
	m.Caption = caption
	return m
}

// ReplyTo marks the document as a reply to another message.
func (m SendDocument) ReplyTo(messageID int) SendDocument {
	m.ReplyToMessageID = messageID
	return m
}

// APIMethod implements Method.
func (SendDocument) APIMethod() string { return "sendDocument" }

// Files implements FileMethod.
func (m SendDocument) Files() map[string]*InputFile {
	files := make(map[string]*InputFile)
	m.Document.fileEntry(files, "document")
	m.Thumb.fileEntry(files, "thumb")
	return files
}

// SendVideo sends a video file.
// Result: Message.
type SendVideo struct {
	ChatID              ChatID      `json:"chat_id"`
	Video               FileRef     `json:"video"`
	Duration            int         `json:"duration,omitempty"`
	Width               int         `json:"width,omitempty"`
	Height              int         `json:"height,omitempty"`
	Thumb               FileRef     `json:"thumb,omitzero"`
	Caption             string      `json:"caption,omitempty"`
	ParseMode           ParseMode   `json:"parse_mode,omitempty"`
	SupportsStreaming   bool        `json:"supports_streaming,omitempty"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int         `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

// NewSendVideo creates a SendVideo request.
func NewSendVideo(chat ChatID, video FileRef) SendVideo {
	return SendVideo{ChatID: chat, Video: video}
}

// APIMethod implements Method.
func (SendVideo) APIMethod() string { return "sendVideo" }

// Files implements FileMethod.
func (m SendVideo) Files() map[string]*InputFile {
	files := make(map[string]*InputFile)
	m.Video.fileEntry(files, "video")
	m.Thumb.fileEntry(files, "thumb")
	return files
}

// SendVoice sends a voice note. The audio must be OGG/OPUS encoded.
// Result: Message.
type SendVoice struct {
	ChatID              ChatID      `json:"chat_id"`
	Voice               FileRef     `json:"voice"`
	Caption             string      `json:"caption,omitempty"`
	ParseMode           ParseMode   `json:"parse_mode,omitempty"`
	Duration            int         `json:"duration,omitempty"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int         `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

// NewSendVoice creates a SendVoice request.
func NewSendVoice(chat ChatID, voice FileRef) SendVoice {
	return SendVoice{ChatID: chat, Voice: voice}
}

// APIMethod implements Method.
func (SendVoice) APIMethod() string { return "sendVoice" }

// Files implements FileMethod.
func (m SendVoice) Files() map[string]*InputFile {
	files := make(map[string]*InputFile)
	m.Voice.fileEntry(files, "voice")
	return files
}

// SendAnimation sends an animation file.
// Result: Message.
type SendAnimation struct {
	ChatID              ChatID      `json:"chat_id"`
	Animation           FileRef     `json:"animation"`
	Duration            int         `json:"duration,omitempty"`
	Width               int         `json:"width,omitempty"`
	Height              int         `json:"height,omitempty"`
	Thumb               FileRef     `json:"thumb,omitzero"`
	Caption             string      `json:"caption,omitempty"`
	ParseMode           ParseMode   `json:"parse_mode,omitempty"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int         `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

// NewSendAnimation creates a SendAnimation request.
func NewSendAnimation(chat ChatID, animation FileRef) SendAnimation {
	return SendAnimation{ChatID: chat, Animation: animation}
}

// APIMethod implements Method.
func (SendAnimation) APIMethod() string { return "sendAnimation" }

// Files implements FileMethod.
func (m SendAnimation) Files() map[string]*InputFile {
	files := make(map[string]*InputFile)
	m.Animation.fileEntry(files, "animation")
	m.Thumb.fileEntry(files, "thumb")
	return files
}
