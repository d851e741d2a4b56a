package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type jsonDocument struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

// JSONStore persists the key-value map as a single JSON file. It is the
// lightweight backend for portable configs and tests.
type JSONStore struct {
	path string
	doc  *jsonDocument
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &jsonDocument{
		Version: 1,
		Values:  make(map[string]string),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'dayspan init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &jsonDocument{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.doc.Values == nil {
		s.doc.Values = make(map[string]string)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	if s.doc == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}
	value, ok := s.doc.Values[key]
	return value, ok, nil
}

func (s *JSONStore) Set(key, value string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Values[key] = value
	return s.save()
}

func (s *JSONStore) Delete(key string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	delete(s.doc.Values, key)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
