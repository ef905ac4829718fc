package handlers

import (
	"net/http"
	"strings"

	"github.com/Freeeeeet/studio_booking/internal/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const claimsKey = "claims"

func extractBearer(c echo.Context) (string, bool) {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// RequireAuth проверяет подпись access-токена (HS256) и кладёт claims в контекст
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := extractBearer(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorResponse{Detail: "not authenticated"})
			}

			claims := &service.Claims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
				// Защита от подмены алгоритма
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, errorResponse{Detail: "could not validate credentials"})
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin пускает дальше только администраторов. Вешается после RequireAuth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := actorFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorResponse{Detail: "not authenticated"})
			}
			if !actor.IsAdmin {
				return c.JSON(http.StatusForbidden, errorResponse{Detail: "not enough permissions"})
			}
			return next(c)
		}
	}
}

// actorFrom достаёт актора из claims, положенных RequireAuth
func actorFrom(c echo.Context) (service.Actor, bool) {
	claims, ok := c.Get(claimsKey).(*service.Claims)
	if !ok {
		return service.Actor{}, false
	}
	return service.Actor{UserID: claims.UserID, IsAdmin: claims.IsAdmin}, true
}

// emailFrom достаёт email актора (subject токена)
func emailFrom(c echo.Context) (string, bool) {
	claims, ok := c.Get(claimsKey).(*service.Claims)
	if !ok {
		return "", false
	}
	return claims.Subject, true
}
