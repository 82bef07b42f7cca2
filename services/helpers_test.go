package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/Dosada05/game-roster/db"
	"github.com/Dosada05/game-roster/repositories"
	"github.com/Dosada05/game-roster/storage"
)

type testRepos struct {
	db      *sql.DB
	players repositories.PlayerRepository
	games   repositories.GameRepository
}

func setupTestRepos(t *testing.T) testRepos {
	t.Helper()
	conn, err := db.Connect("sqlite3", ":memory:", 5*time.Second)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	if err := db.Migrate(context.Background(), conn, "sqlite3"); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return testRepos{
		db:      conn,
		players: repositories.NewPlayerRepository(conn),
		games:   repositories.NewGameRepository(conn),
	}
}

func countRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

type recordedEvent struct {
	room    string
	message interface{}
}

type fakePublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakePublisher) BroadcastToRoom(roomID string, message interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{room: roomID, message: message})
}

func (f *fakePublisher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

type fakeUploader struct {
	uploaded  map[string][]byte
	deleted   []string
	uploadErr error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{uploaded: make(map[string][]byte)}
}

func (f *fakeUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, err
	}
	f.uploaded[key] = buf.Bytes()
	return &storage.UploadResult{Key: key, Location: f.GetPublicURL(key)}, nil
}

func (f *fakeUploader) Delete(ctx context.Context, key string) error {
	if _, ok := f.uploaded[key]; !ok {
		return errors.New("no such key")
	}
	delete(f.uploaded, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeUploader) GetPublicURL(key string) string {
	return fmt.Sprintf("https://cdn.test/%s", key)
}
