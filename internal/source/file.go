package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/youruser/pokecatalog/internal/catalog"
)

// FileSource reads authored set documents from a directory, one JSON file
// per set named <code>.json. This is the production layout: the documents
// are static files on disk.
type FileSource struct {
	dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (s *FileSource) GetSet(ctx context.Context, code string) (*catalog.CardSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Set codes never contain path elements; anything that does cannot
	// name a document.
	if strings.ContainsAny(code, `/\`) || strings.Contains(code, "..") {
		return nil, ErrNotFound
	}

	path := filepath.Join(s.dir, code+".json")
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var set catalog.CardSet
	if err := json.Unmarshal(b, &set); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if set.Set != code {
		return nil, fmt.Errorf("document %s declares set %q, want %q", path, set.Set, code)
	}
	return &set, nil
}

// Codes lists every set code with an authored document in the directory,
// sorted. Used by the validate command to sweep the whole corpus.
func (s *FileSource) Codes() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var codes []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		codes = append(codes, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(codes)
	return codes, nil
}
