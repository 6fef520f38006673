package auth

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	log "github.com/sirupsen/logrus"
)

const (
	SessionCookieName = "fitlog_session"
	FlashCookieName   = "fitlog_flash"
)

// Flash categories, matching the css classes used by the views.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

// Flash is a one-shot user notice shown on the next rendered page.
type Flash struct {
	Category string `json:"c"`
	Message  string `json:"m"`
}

// CookieCodec signs the session and flash cookies with the session secret,
// so a client cannot forge or alter a session token.
type CookieCodec struct {
	sc     *securecookie.SecureCookie
	secure bool
	ttl    time.Duration
}

func NewCookieCodec(secret []byte, secure bool, ttl time.Duration) *CookieCodec {
	sc := securecookie.New(secret, nil)
	sc.SetSerializer(securecookie.JSONEncoder{})
	sc.MaxAge(int(ttl.Seconds()))
	return &CookieCodec{
		sc:     sc,
		secure: secure,
		ttl:    ttl,
	}
}

func (c *CookieCodec) SetSession(w http.ResponseWriter, token string) error {
	encoded, err := c.sc.Encode(SessionCookieName, token)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// SessionToken returns the token from a valid session cookie.
func (c *CookieCodec) SessionToken(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return "", false
	}

	var token string
	if err := c.sc.Decode(SessionCookieName, cookie.Value, &token); err != nil {
		log.Tracef("session cookie rejected: %s", err)
		return "", false
	}
	return token, token != ""
}

func (c *CookieCodec) ClearSession(w http.ResponseWriter) {
	c.expire(w, SessionCookieName)
}

// maxPendingFlashes keeps the flash cookie well below the browser size limit.
const maxPendingFlashes = 10

// SetFlashes appends the given flashes to the ones still pending from the
// request, keeping the latest maxPendingFlashes.
func (c *CookieCodec) SetFlashes(w http.ResponseWriter, r *http.Request, flashes ...Flash) {
	pending := append(c.pendingFlashes(r), flashes...)
	if len(pending) > maxPendingFlashes {
		pending = pending[len(pending)-maxPendingFlashes:]
	}

	encoded, err := c.sc.Encode(FlashCookieName, pending)
	if err != nil {
		log.Errorf("encode flash cookie: %s", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlashes returns the pending flashes and clears them.
func (c *CookieCodec) PopFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	if _, err := r.Cookie(FlashCookieName); err != nil {
		return nil
	}
	c.expire(w, FlashCookieName)
	return c.pendingFlashes(r)
}

func (c *CookieCodec) pendingFlashes(r *http.Request) []Flash {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil {
		return nil
	}

	var flashes []Flash
	if err := c.sc.Decode(FlashCookieName, cookie.Value, &flashes); err != nil {
		log.Tracef("flash cookie rejected: %s", err)
		return nil
	}
	return flashes
}

func (c *CookieCodec) expire(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// RedirectWithFlash stores the flashes and redirects (302) to url.
func (c *CookieCodec) RedirectWithFlash(w http.ResponseWriter, r *http.Request, url string, flashes ...Flash) {
	if len(flashes) > 0 {
		c.SetFlashes(w, r, flashes...)
	}
	http.Redirect(w, r, url, http.StatusFound)
}
