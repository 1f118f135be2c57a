package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Session stores the authenticated user's identity for the current request
type Session struct {
	UserID      uint
	Email       string
	DisplayName string
	GroupID     uint
	IsAdmin     bool
}

// CanManageEvent returns true if the session may update or delete an event
// hosted by hostID. Admins manage everything, members only their own events.
func (s *Session) CanManageEvent(hostID uint) bool {
	return s.IsAdmin || s.UserID == hostID
}

// GetSession retrieves the session placed in the context by AuthMiddleware
func GetSession(c *gin.Context) (Session, error) {
	val, exists := c.Get("session")
	if !exists {
		return Session{}, fmt.Errorf("session missing in context")
	}
	session, ok := val.(Session)
	if !ok {
		return Session{}, fmt.Errorf("invalid session object")
	}
	return session, nil
}
