package common

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const cartCookieName = "cart_id"

func setCartCookie(w http.ResponseWriter, r *http.Request, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cartCookieName,
		Value:    id,
		Domain:   strings.TrimPrefix(r.Host, "."),
		SameSite: http.SameSiteNoneMode,
		HttpOnly: true,
		MaxAge:   2592000,
		Path:     "/",
	})
}

// HandleCartCookie returns the cart id bound to the request, minting a
// fresh one and setting the cookie when none is present or the value is
// not a valid uuid.
func HandleCartCookie(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(cartCookieName)
	if err == nil {
		if _, parseErr := uuid.Parse(c.Value); parseErr == nil {
			return c.Value
		}
	}
	id := uuid.NewString()
	setCartCookie(w, r, id)
	return id
}
