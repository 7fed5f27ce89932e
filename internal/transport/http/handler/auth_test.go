package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/portfolio-api/internal/application/auth"
	"github.com/portfolio-api/internal/application/session"
	"github.com/portfolio-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockAuthSvc struct{ mock.Mock }

func (m *mockAuthSvc) RequestPin(ctx context.Context, email string) (*auth.RequestPinResult, error) {
	args := m.Called(ctx, email)
	if r, _ := args.Get(0).(*auth.RequestPinResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthSvc) VerifyPin(ctx context.Context, email, candidate string) (*auth.VerifyPinResult, error) {
	args := m.Called(ctx, email, candidate)
	if r, _ := args.Get(0).(*auth.VerifyPinResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthSvc) PurgeExpired(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockSessionSvc struct{ mock.Mock }

func (m *mockSessionSvc) Login(ctx context.Context, req session.LoginRequest) (*session.LoginResult, error) {
	args := m.Called(ctx, req)
	if r, _ := args.Get(0).(*session.LoginResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessionSvc) Refresh(ctx context.Context, refreshToken string) (*session.LoginResult, error) {
	args := m.Called(ctx, refreshToken)
	if r, _ := args.Get(0).(*session.LoginResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessionSvc) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *mockSessionSvc) GetCurrent(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if s, _ := args.Get(0).(*domain.Session); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func postJSON(t *testing.T, target string, body interface{}) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	r := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(b))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// --- RequestPin ---

func TestRequestPin_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{}, &mockSessionSvc{})
	r := httptest.NewRequest(http.MethodPost, "/v1/auth/request-pin", bytes.NewBufferString("not-json"))
	rr := httptest.NewRecorder()
	h.RequestPin(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRequestPin_MissingEmail(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{}, &mockSessionSvc{})
	r := postJSON(t, "/v1/auth/request-pin", map[string]string{"email": "not-an-email"})
	rr := httptest.NewRecorder()
	h.RequestPin(rr, r)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestRequestPin_HappyPath(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("RequestPin", mock.Anything, "admin@x.com").
		Return(&auth.RequestPinResult{Message: auth.GenericPinSentMessage}, nil)
	h := NewAuthHandler(svc, &mockSessionSvc{})

	r := postJSON(t, "/v1/auth/request-pin", map[string]string{"email": "admin@x.com"})
	rr := httptest.NewRecorder()
	h.RequestPin(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, auth.GenericPinSentMessage, resp.Message)
	svc.AssertExpectations(t)
}

// Allowed and unknown emails must produce byte-identical responses, or the
// endpoint becomes an allow-list oracle.
func TestRequestPin_ResponsesByteIdentical(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("RequestPin", mock.Anything, mock.Anything).
		Return(&auth.RequestPinResult{Message: auth.GenericPinSentMessage}, nil)
	h := NewAuthHandler(svc, &mockSessionSvc{})

	serve := func(email string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		h.RequestPin(rr, postJSON(t, "/v1/auth/request-pin", map[string]string{"email": email}))
		return rr
	}

	allowed := serve("admin@x.com")
	unknown := serve("nobody@x.com")

	assert.Equal(t, allowed.Code, unknown.Code)
	assert.Equal(t, allowed.Body.Bytes(), unknown.Body.Bytes())
}

func TestRequestPin_DeliveryFailure_BadGateway(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("RequestPin", mock.Anything, "admin@x.com").
		Return(nil, fmt.Errorf("send pin: %w", domain.ErrDeliveryFailed))
	h := NewAuthHandler(svc, &mockSessionSvc{})

	r := postJSON(t, "/v1/auth/request-pin", map[string]string{"email": "admin@x.com"})
	rr := httptest.NewRecorder()
	h.RequestPin(rr, r)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

// --- VerifyPin ---

func TestVerifyPin_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{}, &mockSessionSvc{})
	r := httptest.NewRequest(http.MethodPost, "/v1/auth/verify-pin", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	h.VerifyPin(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVerifyPin_MissingPin(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{}, &mockSessionSvc{})
	r := postJSON(t, "/v1/auth/verify-pin", map[string]string{"email": "admin@x.com"})
	rr := httptest.NewRecorder()
	h.VerifyPin(rr, r)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestVerifyPin_Rejected_Unauthorized(t *testing.T) {
	sessSvc := &mockSessionSvc{}
	sessSvc.On("Login", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%s: %w", auth.GenericInvalidMessage, domain.ErrUnauthorized))
	h := NewAuthHandler(&mockAuthSvc{}, sessSvc)

	r := postJSON(t, "/v1/auth/verify-pin", map[string]string{"email": "admin@x.com", "pin": "000000"})
	rr := httptest.NewRecorder()
	h.VerifyPin(rr, r)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestVerifyPin_HappyPath(t *testing.T) {
	sessSvc := &mockSessionSvc{}
	sessSvc.On("Login", mock.Anything, session.LoginRequest{Email: "admin@x.com", Pin: "123456"}).
		Return(&session.LoginResult{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			Session:      &domain.Session{SessionID: "s1", Email: "admin@x.com", Enable: true},
		}, nil)
	h := NewAuthHandler(&mockAuthSvc{}, sessSvc)

	r := postJSON(t, "/v1/auth/verify-pin", map[string]string{"email": "admin@x.com", "pin": "123456"})
	rr := httptest.NewRecorder()
	h.VerifyPin(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp AuthEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "access-token", resp.AccessToken)
	assert.Equal(t, "refresh-token", resp.RefreshToken)
	require.NotNil(t, resp.Session)
	assert.Equal(t, "s1", resp.Session.SessionID)
	sessSvc.AssertExpectations(t)
}
