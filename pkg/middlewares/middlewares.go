package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chatflow/pkg/consts"
	"chatflow/pkg/entities"
)

type Middlewares struct {
	session *entities.Session
}

// NewMiddlewares
func NewMiddlewares(session *entities.Session) *Middlewares {
	return &Middlewares{
		session: session,
	}
}

// RequireSession rejects requests while no session is established and stamps
// the current user id onto the context otherwise.
func (m *Middlewares) RequireSession(ctx *gin.Context) {
	if !m.session.IsAuthenticated || m.session.CurrentUser == nil {
		ctx.AbortWithStatusJSON(
			http.StatusUnauthorized, entities.ErrorResponse{
				StatusCode: http.StatusUnauthorized,
				Message:    "Not logged in",
			},
		)
		return
	}

	ctx.Set(consts.UserID, m.session.CurrentUser.ID)
	ctx.Next()
}
