// Package telegram provides types and request values for the
// Telegram Bot API, together with the transport contract implemented
// by API adapters.
//
// Every request value implements [Method], which names the remote
// API method it invokes. Requests that can carry file uploads also
// implement [FileMethod], exposing the subset of their fields that
// are pending uploads. An adapter implements [Sender], which has
// exactly two operations, SendJSON and SendFile. [Send] dispatches a
// request to the right one and decodes the typed result:
//
//	client := httpapi.New(token)
//	me, err := telegram.Send[telegram.User](ctx, client, telegram.GetMe{})
//
// Request values are immutable once constructed: With* setters are
// value receivers returning copies, and one Send corresponds to one
// network call. No request holds a reference to the adapter that
// sends it.
package telegram
