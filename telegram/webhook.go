package telegram

// WebhookInfo describes the current webhook status.
type WebhookInfo struct {
	URL                  string   `json:"url"`
	HasCustomCertificate bool     `json:"has_custom_certificate"`
	PendingUpdateCount   int      `json:"pending_update_count"`
	IPAddress            string   `json:"ip_address,omitempty"`
	LastErrorDate        int64    `json:"last_error_date,omitempty"`
	LastErrorMessage     string   `json:"last_error_message,omitempty"`
	MaxConnections       int      `json:"max_connections,omitempty"`
	AllowedUpdates       []string `json:"allowed_updates,omitempty"`
}

// SetWebhook specifies a URL to receive incoming updates via an
// outgoing webhook. An empty URL removes the integration. The
// optional certificate is a pending upload, which makes this a
// file-bearing request.
// Result: bool.
type SetWebhook struct {
	URL                string     `json:"url"`
	Certificate        *InputFile `json:"certificate,omitempty"`
	IPAddress          string     `json:"ip_address,omitempty"`
	MaxConnections     int        `json:"max_connections,omitempty"`
	AllowedUpdates     []string   `json:"allowed_updates,omitempty"`
	DropPendingUpdates bool       `json:"drop_pending_updates,omitempty"`
	SecretToken        string     `json:"secret_token,omitempty"`
}

// NewSetWebhook creates a SetWebhook request for the given URL.
func NewSetWebhook(url string) SetWebhook {
	return SetWebhook{URL: url}
}

// WithCertificate attaches a public key certificate for self-signed
// webhook endpoints.
func (m SetWebhook) WithCertificate(cert *InputFile) SetWebhook {
	m.Certificate = cert
	return m
}

// WithSecretToken sets the secret sent back by Telegram in the
// X-Telegram-Bot-Api-Secret-Token header of every webhook request.
func (m SetWebhook) WithSecretToken(secret string) SetWebhook {
	m.SecretToken = secret
	return m
}

// DropPending drops all pending updates when the webhook is set.
func (m SetWebhook) DropPending() SetWebhook {
	m.DropPendingUpdates = true
	return m
}

// APIMethod implements Method.
func (SetWebhook) APIMethod() string { return "setWebhook" }

// Files implements FileMethod.
func (m SetWebhook) Files() map[string]*InputFile {
	files := make(map[string]*InputFile)
	if m.Certificate != nil {
		files["certificate"] = m.Certificate
	}
	return files
}

// DeleteWebhook removes the webhook integration, switching the bot
// back to getUpdates.
// Result: bool.
type DeleteWebhook struct {
	DropPendingUpdates bool `json:"drop_pending_updates,omitempty"`
}

// APIMethod implements Method.
func (DeleteWebhook) APIMethod() string { return "deleteWebhook" }

// GetWebhookInfo fetches the current webhook status. When the bot is
// using getUpdates the returned URL field is empty.
// Result: WebhookInfo.
type GetWebhookInfo struct{}

// APIMethod implements Method.
func (GetWebhookInfo) APIMethod() string { return "getWebhookInfo" }
