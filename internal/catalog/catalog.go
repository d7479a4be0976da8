// Package catalog loads documentation files from disk, normalizes legacy
// data and indexes the resulting sections by id.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kamusis/docnav/internal/docs"
	"github.com/kamusis/docnav/internal/normalize"
)

// ErrSectionNotFound is returned when a section id is not in the catalog.
var ErrSectionNotFound = errors.New("section not found")

// Catalog is an immutable, id-indexed set of sections.
type Catalog struct {
	sections []docs.Section
	byID     map[string]int
}

// SubtopicRef is a subtopic together with the section it belongs to.
type SubtopicRef struct {
	docs.Subtopic
	SectionID    string
	SectionTitle string
}

// New indexes sections. When two sections share an id the first one wins
// and the duplicate is logged and dropped.
func New(sections []docs.Section, log *slog.Logger) *Catalog {
	if log == nil {
		log = slog.Default()
	}
	c := &Catalog{byID: make(map[string]int, len(sections))}
	for _, s := range sections {
		if _, dup := c.byID[s.ID]; dup {
			log.Warn("duplicate section id, keeping first", "section_id", s.ID)
			continue
		}
		c.byID[s.ID] = len(c.sections)
		c.sections = append(c.sections, s)
	}
	return c
}

// Sections returns all sections in load order.
func (c *Catalog) Sections() []docs.Section {
	return c.sections
}

// Section returns the section with the given id.
func (c *Catalog) Section(id string) (docs.Section, bool) {
	i, ok := c.byID[id]
	if !ok {
		return docs.Section{}, false
	}
	return c.sections[i], true
}

// MustSection is Section with ErrSectionNotFound for unknown ids.
func (c *Catalog) MustSection(id string) (docs.Section, error) {
	s, ok := c.Section(id)
	if !ok {
		return docs.Section{}, fmt.Errorf("%w: %q", ErrSectionNotFound, id)
	}
	return s, nil
}

// Subtopics flattens every subtopic of every section.
func (c *Catalog) Subtopics() []SubtopicRef {
	var out []SubtopicRef
	for _, s := range c.sections {
		for _, st := range s.Subtopics {
			out = append(out, SubtopicRef{Subtopic: st, SectionID: s.ID, SectionTitle: s.Title})
		}
	}
	return out
}

// Load reads every document under paths. Directories are walked for
// .yaml, .yml, .json and .md files in lexical order; Markdown and legacy
// sections are normalized with opts. Missing paths are logged and skipped.
func Load(paths []string, opts normalize.Options, log *slog.Logger) (*Catalog, error) {
	if log == nil {
		log = slog.Default()
	}
	files, err := collectFiles(paths, log)
	if err != nil {
		return nil, err
	}

	var sections []docs.Section
	for _, f := range files {
		secs, err := LoadFile(f, opts)
		if err != nil {
			return nil, err
		}
		log.Debug("loaded document file", "path", f, "sections", len(secs))
		sections = append(sections, secs...)
	}
	return New(sections, log), nil
}

// LoadFile reads one document file and returns its sections, with Markdown
// and legacy content normalized by opts.
func LoadFile(path string, opts normalize.Options) ([]docs.Section, error) {
	if IsMarkdown(path) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open %s: %w", path, err)
		}
		defer f.Close()
		ls, err := docs.ParseMarkdown(f, path)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %s: %w", path, err)
		}
		return normalize.Normalize([]docs.LegacySection{ls}, opts), nil
	}

	df, err := docs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	out := append([]docs.Section{}, df.Sections...)
	out = append(out, normalize.Normalize(df.Legacy, opts)...)
	return out, nil
}

// CollectFiles expands paths into the document files Load would read.
func CollectFiles(paths []string, log *slog.Logger) ([]string, error) {
	if log == nil {
		log = slog.Default()
	}
	return collectFiles(paths, log)
}

func collectFiles(paths []string, log *slog.Logger) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				log.Warn("data path does not exist, skipping", "path", p)
				continue
			}
			return nil, fmt.Errorf("cannot stat %s: %w", p, err)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}

		var found []string
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if IsDocument(path) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("cannot scan %s: %w", p, err)
		}
		sort.Strings(found)
		out = append(out, found...)
	}
	return out, nil
}

// IsDocument reports whether path has a supported document extension.
func IsDocument(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json", ".md", ".markdown":
		return true
	}
	return false
}

// IsMarkdown reports whether path is a Markdown document.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
