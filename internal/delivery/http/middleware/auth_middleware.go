package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"skillsingh-backend/config"
	"skillsingh-backend/internal/delivery/http/response"
	"skillsingh-backend/internal/domain"
	"skillsingh-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the session token (HS256 with the shared secret
// or RS256 via JWKS) and resolves the actor's role from the profiles
// table. The role claim inside the token is never trusted; the profile
// record is authoritative. A request without a valid token never reaches
// a handler.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config, profileUC domain.ProfileUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
				if cfg.SupabaseJWTSecret == "" {
					return nil, fmt.Errorf("HS256 token received but SUPABASE_JWT_SECRET is not configured")
				}
				return []byte(cfg.SupabaseJWTSecret), nil
			}
			if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
				return jwksProvider.KeyFunc(token)
			}
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)

		actor, err := profileUC.ResolveActor(c.Request.Context(), sub, email)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Unable to resolve account", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), actor.UserID)
		c.Set(string(domain.KeyUserEmail), actor.Email)
		c.Set(string(domain.KeyUserRole), actor.Role)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

// ActorFromContext rebuilds the Actor a handler passes down to usecases.
func ActorFromContext(c *gin.Context) domain.Actor {
	return domain.Actor{
		UserID: c.GetString(string(domain.KeyUserID)),
		Email:  c.GetString(string(domain.KeyUserEmail)),
		Role:   c.GetString(string(domain.KeyUserRole)),
	}
}
