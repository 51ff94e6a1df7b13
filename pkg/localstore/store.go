// Package localstore keeps the current user's task records in memory,
// backed by a JSON snapshot on disk. Reads are served from memory; writes
// apply optimistically and the snapshot write is best-effort.
package localstore

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"farmlog/pkg/taskrecord"
)

const tasksFile = "tasks.json"

type Store struct {
	dir string

	mu    sync.Mutex
	tasks []taskrecord.Record
	seq   uint64

	fileMu  sync.Mutex // serializes snapshot writes
	written uint64     // seq of the newest snapshot on disk
	wg      sync.WaitGroup
}

// Open loads the snapshot under dir. A missing or unreadable snapshot is
// logged and treated as an empty collection; Open never fails the caller.
func Open(dir string) *Store {
	s := &Store{dir: dir}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[store] create %s: %v (continuing in memory)", dir, err)
		return s
	}
	s.load()
	return s
}

func (s *Store) load() {
	b, err := os.ReadFile(filepath.Join(s.dir, tasksFile))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[store] read snapshot: %v (starting empty)", err)
		}
		return
	}
	var tasks []taskrecord.Record
	if err := json.Unmarshal(b, &tasks); err != nil {
		log.Printf("[store] corrupt snapshot: %v (starting empty)", err)
		return
	}
	s.tasks = tasks
}

// Add validates the input, assigns a fresh id, appends in memory, and
// kicks off a durable write of the whole sequence. The write does not
// block the caller and a failure never rolls the append back.
func (s *Store) Add(in taskrecord.Input) (taskrecord.Record, error) {
	rec, err := taskrecord.New(in)
	if err != nil {
		return taskrecord.Record{}, err
	}
	rec.ID = uuid.NewString()

	s.mu.Lock()
	s.tasks = append(s.tasks, rec)
	s.seq++
	seq := s.seq
	snapshot, err := json.MarshalIndent(s.tasks, "", "  ")
	s.mu.Unlock()
	if err != nil {
		log.Printf("[store] marshal snapshot: %v", err)
		return rec, nil
	}
	s.writeAsync(snapshot, seq)
	return rec, nil
}

// Replace swaps the whole collection, e.g. after pulling the server's
// copy. Last write wins; there is no merge.
func (s *Store) Replace(tasks []taskrecord.Record) {
	s.mu.Lock()
	s.tasks = append([]taskrecord.Record(nil), tasks...)
	s.seq++
	seq := s.seq
	snapshot, err := json.MarshalIndent(s.tasks, "", "  ")
	s.mu.Unlock()
	if err != nil {
		log.Printf("[store] marshal snapshot: %v", err)
		return
	}
	s.writeAsync(snapshot, seq)
}

func (s *Store) writeAsync(snapshot []byte, seq uint64) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.fileMu.Lock()
		defer s.fileMu.Unlock()
		if seq <= s.written {
			return // a newer snapshot already landed
		}
		s.written = seq
		path := filepath.Join(s.dir, tasksFile)
		tmp := path + ".tmp"
		if err := os.WriteFile(tmp, snapshot, 0o644); err != nil {
			log.Printf("[store] write snapshot: %v", err)
			return
		}
		if err := os.Rename(tmp, path); err != nil {
			log.Printf("[store] replace snapshot: %v", err)
		}
	}()
}

// Flush waits for in-flight snapshot writes. Call before process exit.
func (s *Store) Flush() { s.wg.Wait() }

// All returns a copy of the collection in insertion order.
func (s *Store) All() []taskrecord.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]taskrecord.Record(nil), s.tasks...)
}

// TodaysTasks returns records whose date equals the local calendar date,
// exact string match.
func (s *Store) TodaysTasks() []taskrecord.Record {
	return taskrecord.FilterByDate(s.All(), taskrecord.Today())
}

func (s *Store) ByDate(d string) []taskrecord.Record {
	return taskrecord.FilterByDate(s.All(), d)
}

func (s *Store) ByType(t taskrecord.Type) []taskrecord.Record {
	return taskrecord.FilterByType(s.All(), t)
}
