package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookie = "cafe_session"

// Session lifetime is controlled here; the values it scopes (drafts,
// posted ids) carry their own TTLs in redis.
const sessionMaxAge = 14 * 24 * 60 * 60

// Session assigns every caller a session id cookie. All session-scoped
// state (booking drafts, posted record ids) is keyed by it.
func Session(ctx *gin.Context) {
	sid, err := ctx.Cookie(SessionCookie)
	if err != nil || sid == "" {
		sid = uuid.NewString()
		ctx.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", false, true)
	}
	ctx.Set("session_id", sid)
}
