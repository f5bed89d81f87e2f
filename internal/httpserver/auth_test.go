package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"farmgate/internal/domain"
	"farmgate/internal/password"
	accountsvc "farmgate/internal/service/account"
)

func newTestHasher() *password.Hasher {
	return password.New(password.DefaultPolicy())
}

func TestRegisterHandler_Created(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.AccountSvc = &stubAccountService{
		registered: &domain.Account{ID: "acct-1", Username: "alice", Email: "a@x.com", Role: domain.RoleBuyer},
	}
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"username":"alice","email":"a@x.com","password":"Password1"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"username":"alice"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("credential leaked in response: %s", rec.Body.String())
	}
}

func TestRegisterHandler_DuplicateUsername(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.AccountSvc = &stubAccountService{regErr: accountsvc.ErrDuplicateUsername}
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"username":"alice","email":"a@x.com","password":"Password1"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRegisterHandler_WeakPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	svc := accountsvc.New(nil, newTestHasher(), deps.Tokens)
	deps.AccountSvc = svc
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"username":"alice","email":"a@x.com","password":"weak"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLoginHandler_UnknownAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.AccountSvc = &stubAccountService{loginErr: domain.ErrNotFound}
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"username":"ghost","password":"Password1","role":"buyer"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.AccountSvc = &stubAccountService{loginErr: accountsvc.ErrInvalidCredentials}
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"username":"alice","password":"wrong","role":"buyer"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLoginHandler_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.AccountSvc = &stubAccountService{
		account: &domain.Account{ID: "acct-1", Username: "alice", Role: domain.RoleBuyer},
		access:  "token-xyz",
	}
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"username":"alice","password":"Password1","role":"buyer"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	for _, want := range []string{`"access_token":"token-xyz"`, `"username":"alice"`, `"role":"buyer"`} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("missing %s in body: %s", want, rec.Body.String())
		}
	}
}
