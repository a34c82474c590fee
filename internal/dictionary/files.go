package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/akkad/internal/cache"
	"github.com/ppiankov/akkad/internal/model"
)

// Letter file extensions, in lookup order
var letterExtensions = []string{".json", ".yaml", ".yml"}

// LetterFile is one parsed per-initial-letter dictionary file
type LetterFile struct {
	Path    string
	Initial string
	Entries map[string]model.Entry
}

// FileFinder looks verbs up in a directory of letter files
type FileFinder struct {
	dir    string
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewFileFinder creates a finder over dir. A nil cache disables memoization;
// a nil logger discards logs.
func NewFileFinder(dir string, c cache.Cache, ttl time.Duration, logger *zap.Logger) *FileFinder {
	if c == nil {
		c = cache.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileFinder{dir: dir, cache: c, ttl: ttl, logger: logger}
}

// Dir returns the dictionary directory
func (f *FileFinder) Dir() string {
	return f.dir
}

// Find returns the entry for verb from the letter file of its initial
func (f *FileFinder) Find(ctx context.Context, verb string) (*model.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	initial, err := Initial(verb)
	if err != nil {
		return nil, err
	}
	path, err := f.letterPath(initial)
	if err != nil {
		return nil, err
	}

	lf, err := f.load(path)
	if err != nil {
		return nil, err
	}

	key := NormalizeVerb(verb)
	e, ok := lf.Entries[key]
	if !ok {
		return nil, fmt.Errorf("%q in %s: %w", key, filepath.Base(path), ErrNotFound)
	}
	return cloneEntry(e), nil
}

// letterPath finds the file for an initial, trying each supported extension
func (f *FileFinder) letterPath(initial string) (string, error) {
	for _, ext := range letterExtensions {
		p := filepath.Join(f.dir, initial+ext)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%q under %s: %w", initial, f.dir, ErrNoDictionary)
}

// load parses a letter file, going through the cache
func (f *FileFinder) load(path string) (*LetterFile, error) {
	key := cache.CacheKey(path)
	if v, ok := f.cache.Get(key); ok {
		if lf, ok := v.(*LetterFile); ok {
			return lf, nil
		}
	}

	f.logger.Debug("loading letter file", zap.String("path", path))
	lf, err := LoadLetterFile(path)
	if err != nil {
		return nil, err
	}
	f.cache.Set(key, lf, f.ttl)
	return lf, nil
}

// LetterFiles lists the letter files in dir, sorted by path.
// When several extensions exist for one initial, the first in lookup order wins.
func LetterFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dictionary dir: %w", err)
	}

	byInitial := make(map[string]string)
	rank := func(ext string) int {
		for i, e := range letterExtensions {
			if e == ext {
				return i
			}
		}
		return -1
	}
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		ext := filepath.Ext(de.Name())
		if rank(ext) < 0 {
			continue
		}
		initial := strings.TrimSuffix(de.Name(), ext)
		if prev, ok := byInitial[initial]; ok && rank(filepath.Ext(prev)) <= rank(ext) {
			continue
		}
		byInitial[initial] = de.Name()
	}

	paths := make([]string, 0, len(byInitial))
	for _, name := range byInitial {
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadLetterFile parses one letter file: an object mapping verb spelling to entry
func LoadLetterFile(path string) (*LetterFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNoDictionary)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	raw := make(map[string]model.Entry)
	switch filepath.Ext(path) {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("unsupported dictionary format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	entries := make(map[string]model.Entry, len(raw))
	for verb, e := range raw {
		entries[NormalizeVerb(verb)] = e
	}

	ext := filepath.Ext(path)
	return &LetterFile{
		Path:    path,
		Initial: NormalizeVerb(strings.TrimSuffix(filepath.Base(path), ext)),
		Entries: entries,
	}, nil
}
