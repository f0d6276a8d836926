package history

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// FileStore writes one JSON document per record.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) Init() error {
	return os.MkdirAll(s.dir, 0755)
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func (s *FileStore) Save(r *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(r)
	f, err := os.CreateTemp(s.dir, r.ID+"-*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := errors.Join(enc.Encode(r), f.Close()); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, s.path(r.ID)); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func (s *FileStore) read(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *FileStore) List(limit int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		r, err := s.read(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return nil, err
		}
		records = append(records, *r)
	}

	slices.SortFunc(records, func(a, b Record) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (s *FileStore) Load(id string) (*Record, error) {
	// IDs double as file names, so anything that is not a UUID is refused
	// before touching the filesystem.
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.read(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return r, err
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	matches, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return err
		}
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
