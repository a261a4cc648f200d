package telegram

// GetMe tests the bot's auth token. Requires no parameters.
// Result: User.
type GetMe struct{}

// APIMethod implements Method.
func (GetMe) APIMethod() string { return "getMe" }

// LogOut logs the bot out of the cloud Bot API server before
// running it locally. Result: bool.
type LogOut struct{}

// APIMethod implements Method.
func (LogOut) APIMethod() string { return "logOut" }

// Close closes the bot instance before moving it from one local
// server to another. Result: bool.
type Close struct{}

// APIMethod implements Method.
func (Close) APIMethod() string { return "close" }

// BotCommand is one command of the bot's command list.
type BotCommand struct {
	// Command is the command text, 1-32 characters: lowercase
	// letters, digits and underscores only.
	Command string `json:"command"`
	// Description is shown in the command menu, 3-256 characters.
	Description string `json:"description"`
}

// SetMyCommands changes the bot's command list.
// Result: bool.
type SetMyCommands struct {
	Commands     []BotCommand `json:"commands"`
	LanguageCode string       `json:"language_code,omitempty"`
}

// APIMethod implements Method.
func (SetMyCommands) APIMethod() string { return "setMyCommands" }

// GetMyCommands fetches the bot's current command list.
// Result: []BotCommand.
type GetMyCommands struct {
	LanguageCode string `json:"language_code,omitempty"`
}

// APIMethod implements Method.
func (GetMyCommands) APIMethod() string { return "getMyCommands" }

// DeleteMyCommands deletes the bot's command list for the given
// language. Result: bool.
type DeleteMyCommands struct {
	LanguageCode string `json:"language_code,omitempty"`
}

// APIMethod implements Method.
func (DeleteMyCommands) APIMethod() string { return "deleteMyCommands" }
