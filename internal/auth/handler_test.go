package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/recognition/internal/auth"
	"github.com/frahmantamala/recognition/internal/transport"
	"github.com/frahmantamala/recognition/internal/user"
)

// Mock service for handler tests; the service itself is covered separately.
type mockAuthService struct {
	user          *user.User
	token         string
	deletedTokens []string
	authErr       error
}

func (m *mockAuthService) Register(dto auth.RegisterDTO) (*user.User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	return m.user, nil
}

func (m *mockAuthService) Authenticate(dto auth.LoginDTO) (*user.User, error) {
	if m.authErr != nil {
		return nil, m.authErr
	}
	return m.user, nil
}

func (m *mockAuthService) CreateSession(userID int64) (string, error) {
	return m.token, nil
}

func (m *mockAuthService) SessionUser(token string) (*user.User, error) {
	if token == m.token {
		return m.user, nil
	}
	return nil, nil
}

func (m *mockAuthService) DeleteSession(token string) error {
	m.deletedTokens = append(m.deletedTokens, token)
	return nil
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == transport.SessionCookieName {
			return c
		}
	}
	return nil
}

var _ = Describe("AuthHandler", func() {
	var (
		handler *auth.Handler
		service *mockAuthService
	)

	BeforeEach(func() {
		service = &mockAuthService{
			user:  &user.User{ID: 1, Email: "maria@company.com", Name: "María García"},
			token: "aaaabbbbccccddddaaaabbbbccccddddaaaabbbbccccddddaaaabbbbccccdddd",
		}
		handler = auth.NewHandler(service, auth.CookieConfig{MaxAge: 7 * 24 * time.Hour})
	})

	Describe("Login", func() {
		It("sets an HTTP-only Lax session cookie with the session lifetime", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
				strings.NewReader(`{"email":"maria@company.com","password":"password123"}`))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			cookie := sessionCookie(rec.Result())
			Expect(cookie).NotTo(BeNil())
			Expect(cookie.Value).To(Equal(service.token))
			Expect(cookie.HttpOnly).To(BeTrue())
			Expect(cookie.Secure).To(BeFalse())
			Expect(cookie.SameSite).To(Equal(http.SameSiteLaxMode))
			Expect(cookie.Path).To(Equal("/"))
			Expect(cookie.MaxAge).To(Equal(int((7 * 24 * time.Hour).Seconds())))
		})

		It("marks the cookie Secure when configured", func() {
			handler = auth.NewHandler(service, auth.CookieConfig{MaxAge: time.Hour, Secure: true})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
				strings.NewReader(`{"email":"maria@company.com","password":"password123"}`))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			cookie := sessionCookie(rec.Result())
			Expect(cookie).NotTo(BeNil())
			Expect(cookie.Secure).To(BeTrue())
		})

		It("returns 401 without a cookie on bad credentials", func() {
			service.authErr = auth.ErrInvalidCredentials
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
				strings.NewReader(`{"email":"maria@company.com","password":"wrong"}`))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(sessionCookie(rec.Result())).To(BeNil())
		})
	})

	Describe("Register", func() {
		It("creates a session cookie alongside the new user", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
				strings.NewReader(`{"email":"maria@company.com","password":"password123","name":"María García"}`))
			rec := httptest.NewRecorder()

			handler.Register(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			cookie := sessionCookie(rec.Result())
			Expect(cookie).NotTo(BeNil())
			Expect(cookie.HttpOnly).To(BeTrue())
		})

		It("rejects a payload with missing fields", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
				strings.NewReader(`{"email":"maria@company.com"}`))
			rec := httptest.NewRecorder()

			handler.Register(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(sessionCookie(rec.Result())).To(BeNil())
		})
	})

	Describe("Logout", func() {
		It("deletes the session and expires the cookie", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
			req.AddCookie(&http.Cookie{Name: transport.SessionCookieName, Value: service.token})
			rec := httptest.NewRecorder()

			handler.Logout(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(service.deletedTokens).To(ConsistOf(service.token))
			cookie := sessionCookie(rec.Result())
			Expect(cookie).NotTo(BeNil())
			Expect(cookie.MaxAge).To(BeNumerically("<", 0))
		})

		It("succeeds without any cookie at all", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
			rec := httptest.NewRecorder()

			handler.Logout(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(service.deletedTokens).To(BeEmpty())
		})

		It("is idempotent across repeated calls", func() {
			for i := 0; i < 2; i++ {
				req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
				req.AddCookie(&http.Cookie{Name: transport.SessionCookieName, Value: service.token})
				rec := httptest.NewRecorder()

				handler.Logout(rec, req)

				Expect(rec.Code).To(Equal(http.StatusOK))
			}
			Expect(service.deletedTokens).To(HaveLen(2))
		})
	})

	Describe("SessionMiddleware", func() {
		var next http.Handler

		BeforeEach(func() {
			next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				u, ok := auth.UserFromContext(r.Context())
				Expect(ok).To(BeTrue())
				Expect(u.ID).To(Equal(int64(1)))
				w.WriteHeader(http.StatusOK)
			})
		})

		It("injects the session user into the request context", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
			req.AddCookie(&http.Cookie{Name: transport.SessionCookieName, Value: service.token})
			rec := httptest.NewRecorder()

			handler.SessionMiddleware(next).ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("rejects a missing cookie with 401", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
			rec := httptest.NewRecorder()

			handler.SessionMiddleware(next).ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects an unknown token with 401", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
			req.AddCookie(&http.Cookie{Name: transport.SessionCookieName, Value: "stale"})
			rec := httptest.NewRecorder()

			handler.SessionMiddleware(next).ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
