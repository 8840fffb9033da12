package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// FileKV is a KV stored as a single JSON object file.
//
// Every Set rewrites the whole file through a temporary file and a rename,
// so that a crash never leaves a truncated file behind.
type FileKV struct {
	path string
	mu   sync.Mutex
	data map[string]string
}

// OpenFile opens or creates the store at path.
//
// An unreadable JSON file is moved aside with a ".corrupt" suffix and the
// store starts empty.
func OpenFile(path string, log zerolog.Logger) (*FileKV, error) {
	kv := &FileKV{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return kv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read store %q: %w", path, err)
	}
	if len(raw) == 0 {
		return kv, nil
	}
	if err := json.Unmarshal(raw, &kv.data); err != nil {
		backup := path + ".corrupt"
		log.Warn().Err(err).Str("path", path).Str("backup", backup).Msg("corrupt store file, starting empty")
		if err := os.Rename(path, backup); err != nil {
			return nil, fmt.Errorf("cannot move corrupt store aside: %w", err)
		}
		kv.data = make(map[string]string)
	}
	return kv, nil
}

func (kv *FileKV) Get(key string) (string, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v, ok := kv.data[key]
	return v, ok, nil
}

func (kv *FileKV) Set(key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	prev, existed := kv.data[key]
	kv.data[key] = value
	if err := kv.flush(); err != nil {
		if existed {
			kv.data[key] = prev
		} else {
			delete(kv.data, key)
		}
		return err
	}
	return nil
}

func (kv *FileKV) flush() error {
	raw, err := json.MarshalIndent(kv.data, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode store: %w", err)
	}
	dir := filepath.Dir(kv.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create store directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(kv.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot write store: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after the rename

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write store: %w", err)
	}
	if err := os.Rename(tmp.Name(), kv.path); err != nil {
		return fmt.Errorf("cannot write store: %w", err)
	}
	return nil
}

// Close is a no-op, writes are never buffered.
func (kv *FileKV) Close() error { return nil }
