package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// Тест: SetLoginCookie + WithAuth — user_id попадает в контекст
func TestWithAuth_ValidCookieSetsUserID(t *testing.T) {
	const secret = "test-secret"

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if uid != 77 {
			t.Fatalf("user id: %d", uid)
		}
		w.WriteHeader(http.StatusOK)
	})

	h := WithAuth(secret)(next)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rrCookie := httptest.NewRecorder()
	if err := SetLoginCookie(rrCookie, 77, secret); err != nil {
		t.Fatalf("set cookie: %v", err)
	}
	for _, c := range rrCookie.Result().Cookies() {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid cookie, got %d", rr.Code)
	}
}

// Тест: отсутствие cookie — запрос остаётся анонимным, но не отклоняется
func TestWithAuth_NoCookieLeavesAnonymous(t *testing.T) {
	h := WithAuth("any-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); ok {
			t.Fatalf("user id must not be set without cookie")
		}
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// Тест: токен, подписанный другим секретом, не проходит проверку
func TestWithAuth_WrongSecret(t *testing.T) {
	rrCookie := httptest.NewRecorder()
	_ = SetLoginCookie(rrCookie, 5, "secret-A")

	h := WithAuth("secret-B")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); ok {
			t.Fatalf("user id must not be set with invalid token")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	for _, c := range rrCookie.Result().Cookies() {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// Тест: мусор вместо JWT в cookie — анонимный запрос
func TestWithAuth_GarbageToken(t *testing.T) {
	h := WithAuth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); ok {
			t.Fatalf("user id must not be set")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "not-a-jwt"})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
