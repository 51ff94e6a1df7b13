package apiclient

import (
	"errors"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmlog/entities"
	authCtrlImp "farmlog/pkg/auth/controllerImp"
	authRepoImp "farmlog/pkg/auth/repositoryImp"
	healthCtrlImp "farmlog/pkg/health/controllerImp"
	taskCtrlImp "farmlog/pkg/task/controllerImp"
	taskRepoImp "farmlog/pkg/task/repositoryImp"
	"farmlog/pkg/taskrecord"
	"farmlog/router"
)

const testSecret = "test-secret"

// startServer boots the full route table over a throwaway database, the
// same wiring cmd/server does.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.User{}, &entities.Task{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	e := router.New(
		echo.New(),
		authCtrlImp.New(authRepoImp.New(db), testSecret, time.Hour),
		taskCtrlImp.New(taskRepoImp.New(db)),
		healthCtrlImp.NewHealthCtrl(db),
		testSecret,
	)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestEndToEnd(t *testing.T) {
	srv := startServer(t)

	anon := New(srv.URL, "")
	if err := anon.Register("alice", "pw1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, err := anon.Login("alice", "pw1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("login returned empty token")
	}

	alice := New(srv.URL, token)
	rec, err := taskrecord.New(taskrecord.Input{
		Type:      "plantation",
		Date:      "2024-05-01",
		Field:     "A1",
		PlantName: "Tomato",
		Number:    "50",
	})
	if err != nil {
		t.Fatalf("build record: %v", err)
	}
	stored, err := alice.CreateTask(rec)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if stored.ID == "" || stored.Owner == "" {
		t.Fatalf("stored record missing id/owner: %+v", stored)
	}

	list, err := alice.ListTasks()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list length = %d, want 1", len(list))
	}
	d, ok := list[0].Details.(taskrecord.PlantationDetails)
	if !ok || d.PlantName != "Tomato" || d.Number != "50" {
		t.Errorf("listed record = %+v", list[0])
	}

	updated, err := alice.UpdateTask(stored.ID, map[string]string{"notes": "rows 3-5"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Notes != "rows 3-5" {
		t.Errorf("update notes = %q", updated.Notes)
	}

	if err := alice.DeleteTask(stored.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, err = alice.ListTasks()
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("list after delete = %d records, want 0", len(list))
	}
}

func TestErrorsMapped(t *testing.T) {
	srv := startServer(t)
	anon := New(srv.URL, "")

	if err := anon.Register("alice", "pw1"); err != nil {
		t.Fatal(err)
	}
	if err := anon.Register("alice", "pw2"); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate register error = %v, want ErrConflict", err)
	}
	if _, err := anon.Login("alice", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("bad login error = %v, want ErrUnauthorized", err)
	}
	if _, err := anon.ListTasks(); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("unauthenticated list error = %v, want ErrUnauthorized", err)
	}

	token, err := anon.Login("alice", "pw1")
	if err != nil {
		t.Fatal(err)
	}
	alice := New(srv.URL, token)
	if err := alice.DeleteTask("9999"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing delete error = %v, want ErrNotFound", err)
	}
	rec := taskrecord.Record{Type: "plantation"} // no field
	if _, err := alice.CreateTask(rec); !errors.Is(err, ErrInvalidData) {
		t.Errorf("invalid create error = %v, want ErrInvalidData", err)
	}
}

// Another user's record must read as missing, never as forbidden.
func TestCrossOwner(t *testing.T) {
	srv := startServer(t)
	anon := New(srv.URL, "")
	for _, u := range []string{"alice", "bob"} {
		if err := anon.Register(u, "pw"); err != nil {
			t.Fatal(err)
		}
	}
	aliceTok, _ := anon.Login("alice", "pw")
	bobTok, _ := anon.Login("bob", "pw")
	alice, bob := New(srv.URL, aliceTok), New(srv.URL, bobTok)

	rec, err := taskrecord.New(taskrecord.Input{Type: "irrigation", Date: "2024-05-01", Field: "A1"})
	if err != nil {
		t.Fatal(err)
	}
	stored, err := alice.CreateTask(rec)
	if err != nil {
		t.Fatal(err)
	}

	if err := bob.DeleteTask(stored.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-owner delete error = %v, want ErrNotFound", err)
	}
	if _, err := bob.UpdateTask(stored.ID, map[string]string{"notes": "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-owner update error = %v, want ErrNotFound", err)
	}
	list, err := alice.ListTasks()
	if err != nil || len(list) != 1 {
		t.Errorf("alice's record gone: %v, %d", err, len(list))
	}
}
