package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/tgwire/tgwire/telegram"
)

// ErrReplyUpload is returned by Reply for requests that carry file
// uploads. Webhook replies travel as the HTTP response body and
// cannot contain multipart data; send those through a Sender instead.
var ErrReplyUpload = errors.New("webhook: reply cannot carry file uploads")

// Reply answers the webhook request itself with an API call, saving
// the round trip of a separate HTTP request. The method is encoded
// into the response body with its name in a "method" field, as the
// Bot API expects. Call it at most once per request, instead of
// letting the Receiver write its default response.
//
// Requests whose file fields hold uploads are rejected with
// ErrReplyUpload. File fields referencing a file_id or URL are fine.
func Reply(w http.ResponseWriter, m telegram.Method) error {
	if fm, ok := m.(telegram.FileMethod); ok && len(fm.Files()) > 0 {
		return ErrReplyUpload
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("webhook: encode %s reply: %w", m.APIMethod(), err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("webhook: %s does not encode to an object: %w", m.APIMethod(), err)
	}
	fields["method"] = json.RawMessage(fmt.Sprintf("%q", m.APIMethod()))

	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("webhook: encode %s reply: %w", m.APIMethod(), err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("webhook: write %s reply: %w", m.APIMethod(), err)
	}
	return nil
}
