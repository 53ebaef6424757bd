package cartstore

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "guest_cart"
	sessionItemsKey   = "items"
)

// SessionBackend persists a guest Store in the cookie session, the server
// counterpart of the storefront's device-local storage.
type SessionBackend struct {
	store *sessions.CookieStore
}

func NewSessionBackend(keyPairs ...[]byte) *SessionBackend {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionBackend{store: store}
}

// Load returns the cart held in the request's session. A missing or
// unreadable session yields an empty cart rather than an error.
func (b *SessionBackend) Load(r *http.Request) *Store {
	session, err := b.store.Get(r, sessionCookieName)
	if err != nil || session == nil {
		return New()
	}

	raw, ok := session.Values[sessionItemsKey].(string)
	if !ok || raw == "" {
		return New()
	}

	var items Items
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return New()
	}
	return FromItems(items)
}

func (b *SessionBackend) Save(w http.ResponseWriter, r *http.Request, cart *Store) error {
	session, err := b.store.Get(r, sessionCookieName)
	if err != nil && session == nil {
		return err
	}

	raw, err := json.Marshal(cart.Items())
	if err != nil {
		return err
	}
	session.Values[sessionItemsKey] = string(raw)
	return session.Save(r, w)
}
