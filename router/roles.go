package router

import (
	"net/http"

	"opsdesk/controllers"

	"github.com/gin-gonic/gin"
)

// RequireRole blocks access when the logged user does not carry the role.
// Os papéis são estritos: owner não entra nas rotas de staff e vice-versa,
// igual ao gate por sessão do painel original.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := controllers.GetUserLogged(c)
		if !ok {
			controllers.RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}
		if user.Role != role {
			controllers.RespondError(c, role+" required", http.StatusForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
