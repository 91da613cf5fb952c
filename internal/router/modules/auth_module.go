package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-bucketlist-api/internal/interface/http"
	"github.com/oksasatya/go-bucketlist-api/internal/interface/middleware"
	"github.com/oksasatya/go-bucketlist-api/pkg/helpers"
)

// AuthModule wires registration, login and account removal.
// Public: POST /auth/register, POST /auth/login
// Protected: DELETE /auth/account
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/login", m.Handler.Login)

	auth := rg.Group("/auth")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.DELETE("/account", m.Handler.DeleteAccount)
	}
}
