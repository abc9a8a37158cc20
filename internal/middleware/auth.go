package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const userIDKey contextKey = "user_id"

const authCookieName = "auth_token"

// claims — полезная нагрузка auth-токена.
type claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// SetLoginCookie подписывает JWT с идентификатором пользователя и ставит его
// как auth cookie ответа.
func SetLoginCookie(w http.ResponseWriter, userID int64, secret string) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
		UserID: userID,
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
	})
	return nil
}

// GetUserIDFromContext возвращает идентификатор пользователя, установленный WithAuth.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// WithAuth разбирает auth cookie и кладёт user_id в контекст запроса.
// Отсутствующий или невалидный токен не отклоняет запрос: запрос просто
// остаётся анонимным, решение за хендлером.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(authCookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			cl := &claims{}
			token, err := jwt.ParseWithClaims(c.Value, cl, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, cl.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
