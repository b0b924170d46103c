package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookieName = "gamepay_session"
	sessionContextKey = "sessionID"
)

type SessionArgs struct {
	TTL    time.Duration
	Secure bool
}

// Session выдает браузеру идентификатор сессии и кладет его в контекст запроса.
// Само состояние сессии живет на сервере, в cookie — только непрозрачный id.
func Session(args SessionArgs) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(
				SessionCookieName,
				sessionID,
				int(args.TTL.Seconds()),
				"/",
				"",
				args.Secure,
				true,
			)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// SessionID возвращает идентификатор сессии текущего запроса.
func SessionID(c *gin.Context) string {
	id, _ := c.Get(sessionContextKey)
	sessionID, _ := id.(string)
	return sessionID
}
