package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionKey est la clé context sous laquelle l'id de session boutique est posé
const SessionKey = "session_id"

// SessionHeader porte l'identité anonyme du navigateur, indépendante du compte
const SessionHeader = "X-Session-ID"

// Session lit l'id de session du header, en frappe un neuf si absent, et le
// renvoie toujours dans la réponse pour que le front le réutilise
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		c.Set(SessionKey, sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}

// SessionID retourne l'id de session posé par le middleware Session
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
