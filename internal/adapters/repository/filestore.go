package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/model"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/scoring"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/pkg/metrics"
)

// FileStore persists the whole score book as one JSON object, rewritten
// wholesale on every upsert. A missing file means an empty book.
//
// Writers are serialized by an in-process mutex. There is no cross-process
// lock: a second process writing the same file races on the
// read-modify-write cycle. Single-writer deployment assumed.
type FileStore struct {
	mu   sync.Mutex
	path string
	mode fs.FileMode
}

// FileOption applies a configuration option to the FileStore.
type FileOption func(*FileStore)

// WithFileMode sets the permission bits used when creating the score file.
func WithFileMode(mode fs.FileMode) FileOption {
	return func(s *FileStore) {
		if mode != 0 {
			s.mode = mode
		}
	}
}

// NewFileStore creates a file-backed store at path. The file itself is
// created lazily on the first write.
func NewFileStore(path string, opts ...FileOption) *FileStore {
	s := &FileStore{
		path: path,
		mode: 0o644,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAll reads and decodes the full book. File-not-found initializes an
// empty book instead of failing.
func (s *FileStore) GetAll(ctx context.Context) (model.ScoreBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Upsert merges entry into teamID's record and rewrites the whole file.
// The rewrite goes through a temp file plus rename so a failed write never
// leaves a truncated book behind.
func (s *FileStore) Upsert(ctx context.Context, teamID string, entry model.ScoreEntry) (model.TeamScoreRecord, error) {
	if teamID == "" {
		return model.TeamScoreRecord{}, ErrEmptyTeamID
	}
	if entry.UpdatedBy == "" {
		return model.TeamScoreRecord{}, ErrEmptyJudgeID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.load()
	if err != nil {
		return model.TeamScoreRecord{}, err
	}

	rec := scoring.Merge(book[teamID], entry)
	book[teamID] = rec

	start := time.Now()
	if err := s.save(book); err != nil {
		metrics.RecordStorageError("file")
		return model.TeamScoreRecord{}, err
	}
	metrics.RecordStoreWriteLatency("file", float64(time.Since(start).Milliseconds()))

	return rec, nil
}

func (s *FileStore) load() (model.ScoreBook, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.ScoreBook{}, nil
	}
	if err != nil {
		metrics.RecordStorageError("file")
		return nil, fmt.Errorf("read %s: %w: %w", s.path, ErrStorage, err)
	}
	if len(data) == 0 {
		return model.ScoreBook{}, nil
	}

	var book model.ScoreBook
	if err := json.Unmarshal(data, &book); err != nil {
		metrics.RecordStorageError("file")
		return nil, fmt.Errorf("decode %s: %w: %w", s.path, ErrStorage, err)
	}
	if book == nil {
		book = model.ScoreBook{}
	}
	return book, nil
}

func (s *FileStore) save(book model.ScoreBook) error {
	data, err := json.MarshalIndent(book, "", "  ")
	if err != nil {
		return fmt.Errorf("encode score book: %w: %w", ErrStorage, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".scores-*.json")
	if err != nil {
		return fmt.Errorf("create temp in %s: %w: %w", dir, ErrStorage, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w: %w", tmpName, ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w: %w", tmpName, ErrStorage, err)
	}
	if err := os.Chmod(tmpName, s.mode); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w: %w", tmpName, ErrStorage, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename to %s: %w: %w", s.path, ErrStorage, err)
	}
	return nil
}
