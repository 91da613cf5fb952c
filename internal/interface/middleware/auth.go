package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-bucketlist-api/pkg/helpers"
	"github.com/oksasatya/go-bucketlist-api/pkg/response"
)

const CtxUserIDKey = "userID"

const (
	MsgUnauthenticated = "Register or log in to access this resource"
	MsgExpiredToken    = "Expired token. Please login to get a new one"
	MsgInvalidToken    = "Invalid token. Register or login"
)

// Auth reads the bearer token from the Authorization header, verifies it and
// injects the user id into the context. No handler after it runs without one.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := helpers.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			reject(c, MsgUnauthenticated)
			return
		}
		uid, err := jwt.Verify(token)
		switch {
		case errors.Is(err, helpers.ErrExpiredToken):
			reject(c, MsgExpiredToken)
			return
		case err != nil:
			reject(c, MsgInvalidToken)
			return
		}
		c.Set(CtxUserIDKey, uid)
		c.Next()
	}
}

func reject(c *gin.Context, message string) {
	helpers.RequestsRejected.Add(1)
	response.Abort(c, http.StatusUnauthorized, message, nil)
}

// UserID returns the identity set by Auth.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
