package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"farmlog/pkg/taskrecord"
)

func TestStore_AddThenReload(t *testing.T) {
	dir := t.TempDir()

	s := Open(dir)
	first, err := s.Add(taskrecord.Input{Type: "plantation", Date: "2024-05-01", Field: "A1", PlantName: "Tomato", Number: "50"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	second, err := s.Add(taskrecord.Input{Type: "irrigation", Date: "2024-05-02", Field: "A2", Method: "Drip"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("ids not unique: %q vs %q", first.ID, second.ID)
	}
	s.Flush()

	// new session sees the same sequence
	reopened := Open(dir)
	got := reopened.All()
	if len(got) != 2 {
		t.Fatalf("reloaded %d records, want 2", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Errorf("insertion order lost: %q, %q", got[0].ID, got[1].ID)
	}
	d, ok := got[0].Details.(taskrecord.PlantationDetails)
	if !ok || d.PlantName != "Tomato" {
		t.Errorf("details did not survive reload: %+v", got[0].Details)
	}
}

func TestStore_AddRejectsInvalid(t *testing.T) {
	s := Open(t.TempDir())
	if _, err := s.Add(taskrecord.Input{Type: "harvest", Field: "A1"}); err == nil {
		t.Error("invalid type accepted")
	}
	if len(s.All()) != 0 {
		t.Error("rejected input reached the collection")
	}
}

func TestStore_CorruptSnapshotStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tasks.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := Open(dir)
	if got := s.All(); len(got) != 0 {
		t.Errorf("corrupt snapshot produced %d records, want 0", len(got))
	}
	// and the store still accepts writes
	if _, err := s.Add(taskrecord.Input{Type: "herbicide", Field: "A1"}); err != nil {
		t.Errorf("Add after corrupt load: %v", err)
	}
	s.Flush()
}

func TestStore_TodaysTasks(t *testing.T) {
	s := Open(t.TempDir())
	if _, err := s.Add(taskrecord.Input{Type: "irrigation", Field: "A1"}); err != nil { // defaults to today
		t.Fatal(err)
	}
	if _, err := s.Add(taskrecord.Input{Type: "irrigation", Date: "2000-01-01", Field: "A2"}); err != nil {
		t.Fatal(err)
	}
	today := s.TodaysTasks()
	if len(today) != 1 || today[0].Field != "A1" {
		t.Errorf("TodaysTasks = %d records, want just the defaulted one", len(today))
	}
	if got := s.ByDate("2000-01-01"); len(got) != 1 || got[0].Field != "A2" {
		t.Errorf("ByDate = %v", got)
	}
	if got := s.ByType(taskrecord.TypeIrrigation); len(got) != 2 {
		t.Errorf("ByType(irrigation) = %d records, want 2", len(got))
	}
	if got := s.ByType(""); len(got) != 2 {
		t.Errorf("ByType(empty) = %d records, want all", len(got))
	}
	s.Flush()
}

func TestStore_Replace(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir)
	if _, err := s.Add(taskrecord.Input{Type: "irrigation", Field: "old"}); err != nil {
		t.Fatal(err)
	}
	s.Replace([]taskrecord.Record{
		{ID: "7", Type: taskrecord.TypePlantation, Date: "2024-05-01", Field: "new", Details: taskrecord.PlantationDetails{PlantName: "Tomato"}},
	})
	s.Flush()

	reopened := Open(dir)
	got := reopened.All()
	if len(got) != 1 || got[0].Field != "new" {
		t.Errorf("Replace not durable: %+v", got)
	}
}

func TestSession_RoundTrip(t *testing.T) {
	s := Open(t.TempDir())
	if _, ok := s.LoadSession(); ok {
		t.Error("LoadSession reported a session before login")
	}
	if err := s.SaveSession("tok123", "alice"); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	sess, ok := s.LoadSession()
	if !ok || sess.Token != "tok123" || sess.Username != "alice" {
		t.Errorf("LoadSession = %+v, %v", sess, ok)
	}
	if err := s.ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	if _, ok := s.LoadSession(); ok {
		t.Error("session survived ClearSession")
	}
	// clearing twice is fine
	if err := s.ClearSession(); err != nil {
		t.Errorf("second ClearSession: %v", err)
	}
}
