package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	apimw "github.com/echart-dentnu/echart-api/internal/api/middleware"
	"github.com/echart-dentnu/echart-api/internal/core/domain"
	"github.com/echart-dentnu/echart-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, username, password string) (*ports.TokenResult, error)
	logoutFn func(ctx context.Context, userID int) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.TokenResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, userID int) error {
	return s.logoutFn(ctx, userID)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (*ports.TokenResult, error) {
			if username != "somchai" || password != "s3cret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &ports.TokenResult{
				AccessToken: "h.p.s",
				Role:        domain.RoleAdministrator,
				UserID:      "7",
				Users:       "somchai",
				RoleID:      1,
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"Users":"somchai","Passw":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["AccessToken"] != "h.p.s" {
		t.Fatalf("expected AccessToken, got %v", resp["AccessToken"])
	}
	if resp["Role"] != domain.RoleAdministrator || resp["UserId"] != "7" || resp["Users"] != "somchai" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp["RoleID"] != float64(1) {
		t.Fatalf("expected RoleID 1, got %v", resp["RoleID"])
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*ports.TokenResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"Users":"somchai"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*ports.TokenResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_ServiceErrorsPassThrough(t *testing.T) {
	e := echo.New()
	for _, want := range []error{domain.ErrWrongPassword, domain.ErrUserNotFound} {
		stub := &stubAuthService{
			loginFn: func(_ context.Context, _, _ string) (*ports.TokenResult, error) {
				return nil, want
			},
		}
		handler := NewAuthHandler(stub)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"Users":"somchai","Passw":"bad"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Login(c)
		if !errors.Is(err, want) {
			t.Fatalf("expected %v to pass through for the error handler, got %v", want, err)
		}
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, userID int) error {
			if userID != 7 {
				t.Fatalf("unexpected userID: %d", userID)
			}
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(apimw.CtxSubject, "7")

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["Message"] != "Logged out successfully" {
		t.Fatalf("unexpected message: %v", resp["Message"])
	}
}

func TestAuthHandler_Logout_BadSubject(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, _ int) error {
			t.Fatalf("service should not be called")
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(apimw.CtxSubject, "not-a-number")

	if err := handler.Logout(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout_UnknownUser(t *testing.T) {
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, _ int) error {
			return domain.ErrUserNotFound
		},
	}
	handler := NewAuthHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(apimw.CtxSubject, "99999")

	if err := handler.Logout(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to pass through, got %v", err)
	}
}
