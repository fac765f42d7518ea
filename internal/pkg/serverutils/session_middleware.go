package serverutils

import (
	"time"

	"gamechat-be/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionMiddleware correlates requests from one anonymous visitor. The
// session id travels in an HMAC-signed cookie; a missing or tampered
// cookie silently gets a fresh session instead of an error.
func SessionMiddleware(cfg config.SessionConfig) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		sessionId, ok := verifySessionCookie(ctx.Cookies(cfg.CookieName), cfg.Secret)
		if !ok {
			sessionId = uuid.NewString()
			signed, err := mintSessionCookie(sessionId, cfg)
			if err != nil {
				return err
			}
			ctx.Cookie(&fiber.Cookie{
				Name:     cfg.CookieName,
				Value:    signed,
				Expires:  time.Now().AddDate(0, 0, cfg.MaxAgeDays),
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}

		ctx.Locals("session_id", sessionId)
		return ctx.Next()
	}
}

func mintSessionCookie(sessionId string, cfg config.SessionConfig) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionId,
		"exp": time.Now().AddDate(0, 0, cfg.MaxAgeDays).Unix(),
	})
	return token.SignedString([]byte(cfg.Secret))
}

func verifySessionCookie(raw, secret string) (string, bool) {
	if raw == "" {
		return "", false
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", false
	}
	return sid, true
}
