package library

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arcanaland/cardrarity/internal/card"
)

// Stdin is the collection name that reads the payload from standard input
const Stdin = "-"

const ext = ".json"

// Entry describes one collection file in the library
type Entry struct {
	Name     string
	Path     string
	Cards    int
	Rarities map[card.Rarity]int

	// Err is set when the file could not be read
	Err error
}

// Library is a directory of collection payloads
type Library struct {
	Path  string
	stdin io.Reader
}

// New returns a library rooted at path, reading "-" from os.Stdin
func New(path string) *Library {
	return &Library{Path: path, stdin: os.Stdin}
}

// WithStdin replaces the reader used for the "-" collection
func (l *Library) WithStdin(r io.Reader) *Library {
	l.stdin = r
	return l
}

// Init creates the library directory
func (l *Library) Init() error {
	if err := os.MkdirAll(l.Path, 0755); err != nil {
		return fmt.Errorf("error creating collection library: %w", err)
	}
	return nil
}

// Exists reports whether the library directory is present
func (l *Library) Exists() bool {
	info, err := os.Stat(l.Path)
	return err == nil && info.IsDir()
}

// List returns every *.json collection in the library, sorted by name.
// Unreadable files are listed with Err set rather than failing the listing.
func (l *Library) List() ([]Entry, error) {
	libraryPath, err := filepath.EvalSymlinks(l.Path)
	if err != nil {
		return nil, fmt.Errorf("error resolving library path: %w", err)
	}

	dirEntries, err := os.ReadDir(libraryPath)
	if err != nil {
		return nil, fmt.Errorf("error reading collection library: %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() || filepath.Ext(de.Name()) != ext {
			continue
		}
		e := Entry{
			Name: strings.TrimSuffix(de.Name(), ext),
			Path: filepath.Join(libraryPath, de.Name()),
		}
		c, err := loadFile(e.Path)
		if err != nil {
			slog.Debug("skipping unreadable collection", slog.String("path", e.Path), slog.Any("error", err))
			e.Err = err
		} else {
			e.Cards = c.Len()
			e.Rarities = c.CountByRarity()
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Resolve returns the path to a collection, looking first in the library
// (with or without the .json extension) and then treating name as a path.
func (l *Library) Resolve(name string) (string, error) {
	if name == Stdin {
		return Stdin, nil
	}
	if name == "" {
		return "", fmt.Errorf("no collection given and no default collection configured")
	}

	candidates := []string{filepath.Join(l.Path, name)}
	if filepath.Ext(name) != ext {
		candidates = append([]string{filepath.Join(l.Path, name+ext)}, candidates...)
	}
	candidates = append(candidates, name)

	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}

	return "", fmt.Errorf("collection not found: %s", name)
}

// Open resolves name and opens the payload for reading
func (l *Library) Open(name string) (io.ReadCloser, error) {
	path, err := l.Resolve(name)
	if err != nil {
		return nil, err
	}
	if path == Stdin {
		return io.NopCloser(l.stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening collection: %w", err)
	}
	return f, nil
}

// Load resolves and decodes a collection
func (l *Library) Load(name string) (card.Collection, error) {
	rc, err := l.Open(name)
	if err != nil {
		return card.Collection{Cards: []card.Card{}}, err
	}
	defer rc.Close()

	c, err := card.Decode(rc)
	if err != nil {
		return c, fmt.Errorf("error loading collection %s: %w", name, err)
	}
	slog.Debug("loaded collection", slog.String("name", name), slog.Int("cards", c.Len()))
	return c, nil
}

func loadFile(path string) (card.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return card.Collection{}, err
	}
	defer f.Close()
	return card.Decode(f)
}
