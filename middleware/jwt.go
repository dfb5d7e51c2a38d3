package middleware

import (
	"net/http"
	"strings"

	"github.com/doclibhq/doclib-be/service"
	"github.com/doclibhq/doclib-be/types"
	"github.com/doclibhq/doclib-be/utils"
	"github.com/gin-gonic/gin"
)

const (
	claimsContextKey = "claims"
	tokenContextKey  = "token"
)

// AuthMiddleware validates the bearer token and rejects tokens revoked by an
// earlier sign-out.
func AuthMiddleware(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Authorization header is required",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Authorization header format must be Bearer {token}",
			})
			return
		}

		claims, err := utils.ParseUserToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Invalid token",
			})
			return
		}
		if auth.IsRevoked(c.Request.Context(), parts[1]) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Token has been revoked",
			})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Set(tokenContextKey, parts[1])
		c.Next()
	}
}

// ClaimsFromContext returns the authenticated user claims, if any.
func ClaimsFromContext(c *gin.Context) (*utils.UserClaims, bool) {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.UserClaims)
	return claims, ok
}

// EmailFromContext returns the session email, or "anonymous" when the
// request carries no authenticated session.
func EmailFromContext(c *gin.Context) string {
	if claims, ok := ClaimsFromContext(c); ok && claims.Email != "" {
		return claims.Email
	}
	return "anonymous"
}

// TokenFromContext returns the raw bearer token of the request.
func TokenFromContext(c *gin.Context) string {
	return c.GetString(tokenContextKey)
}
