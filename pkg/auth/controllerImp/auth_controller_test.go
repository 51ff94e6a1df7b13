package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmlog/entities"
	"farmlog/pkg/auth/controller"
	"farmlog/pkg/auth/repositoryImp"
)

func newTestCtrl(t *testing.T) controller.AuthController {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return New(repositoryImp.New(db), "test-secret", time.Hour)
}

func post(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec
}

func TestRegister(t *testing.T) {
	ctrl := newTestCtrl(t)

	if rec := post(t, ctrl.Register, `{"username":"alice","password":"pw1"}`); rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201 (%s)", rec.Code, rec.Body)
	}
	if rec := post(t, ctrl.Register, `{"username":"alice","password":"other"}`); rec.Code != http.StatusConflict {
		t.Errorf("duplicate register status = %d, want 409", rec.Code)
	}
	if rec := post(t, ctrl.Register, `{"username":"","password":"pw"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("missing username status = %d, want 400", rec.Code)
	}
	if rec := post(t, ctrl.Register, `{"username":"bob"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("missing password status = %d, want 400", rec.Code)
	}
}

func TestLogin(t *testing.T) {
	ctrl := newTestCtrl(t)
	post(t, ctrl.Register, `{"username":"alice","password":"pw1"}`)

	rec := post(t, ctrl.Login, `{"username":"alice","password":"pw1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200 (%s)", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), `"token"`) {
		t.Errorf("login body carries no token: %s", rec.Body)
	}
}

// Wrong password and unknown user must be indistinguishable.
func TestLogin_UniformFailure(t *testing.T) {
	ctrl := newTestCtrl(t)
	post(t, ctrl.Register, `{"username":"alice","password":"pw1"}`)

	wrongPW := post(t, ctrl.Login, `{"username":"alice","password":"nope"}`)
	noUser := post(t, ctrl.Login, `{"username":"mallory","password":"nope"}`)

	if wrongPW.Code != http.StatusUnauthorized || noUser.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d/%d, want 401/401", wrongPW.Code, noUser.Code)
	}
	if wrongPW.Body.String() != noUser.Body.String() {
		t.Errorf("failure bodies differ: %q vs %q", wrongPW.Body, noUser.Body)
	}
}

func TestRegister_NeverStoresPlaintext(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		t.Fatal(err)
	}
	ctrl := New(repositoryImp.New(db), "test-secret", time.Hour)
	post(t, ctrl.Register, `{"username":"alice","password":"pw1"}`)

	var u entities.User
	if err := db.Where("username = ?", "alice").First(&u).Error; err != nil {
		t.Fatalf("user row missing: %v", err)
	}
	if u.PasswordHash == "pw1" || u.PasswordHash == "" {
		t.Errorf("password not hashed: %q", u.PasswordHash)
	}
}
