// Package content resolves the virtual files of every section: inline
// content from the config, single files read from disk and whole source
// directories filtered by glob patterns.
package content

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"folio/internal/config"
	"folio/internal/errors"
	"folio/internal/log"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gobwas/glob"
)

// File is one resolved virtual file.
type File struct {
	Name    string
	Content string
	Path    string // Empty for inline content
}

// Size returns the content length in bytes.
func (f File) Size() int {
	return len(f.Content)
}

// HumanSize formats Size for display, e.g. "1.2 kB".
func (f File) HumanSize() string {
	return humanize.Bytes(uint64(f.Size()))
}

// Library holds the resolved files of every section, in tab order.
type Library struct {
	sections map[string][]File
	order    []string
	dirs     []string
}

// Load resolves every section of cfg. Missing files named explicitly are an
// error; a source directory that does not exist is skipped with a warning.
func Load(cfg *config.Config) (*Library, error) {
	lib := &Library{sections: make(map[string][]File, len(cfg.Sections))}

	for _, s := range cfg.Sections {
		files, err := lib.loadSection(cfg.BaseDir, s)
		if err != nil {
			return nil, errors.Wrapf(err, "section %s", s.ID)
		}
		lib.sections[s.ID] = files
		lib.order = append(lib.order, s.ID)
	}

	return lib, nil
}

func (l *Library) loadSection(base string, s config.Section) ([]File, error) {
	files := make([]File, 0, len(s.Files))
	seen := make(map[string]bool, len(s.Files))

	for _, f := range s.Files {
		file := File{Name: f.Name, Content: f.Content}
		if f.Content == "" && f.Path != "" {
			path := resolve(base, f.Path)
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fileError(path, err)
			}
			file.Content = string(data)
			file.Path = path
		}
		files = append(files, file)
		seen[f.Name] = true
	}

	if s.Source.Dir == "" {
		return files, nil
	}

	dir := resolve(base, s.Source.Dir)
	matched, err := scanDir(dir, s.Source.Include)
	if err != nil {
		if errors.IsFileNotFound(err) {
			log.LogWithFields(log.F("section", s.ID), log.F("dir", dir)).Warn("content directory missing, skipping")
			return files, nil
		}
		return nil, err
	}
	l.dirs = append(l.dirs, dir)

	for _, file := range matched {
		if seen[file.Name] {
			continue
		}
		files = append(files, file)
		seen[file.Name] = true
	}
	return files, nil
}

// scanDir reads the text files directly under dir whose names match any
// of patterns, sorted by name. No patterns matches everything.
func scanDir(dir string, patterns []string) ([]File, error) {
	matchers := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.NewFileError("invalid include pattern", p, errors.InvalidPattern, err)
		}
		matchers = append(matchers, g)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fileError(dir, err)
	}

	var files []File
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !matchesAny(matchers, entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		text, mime, err := isText(path)
		if err != nil {
			return nil, err
		}
		if !text {
			log.LogWithFields(log.F("file", path), log.F("mime", mime)).Warn("not a text file, skipping")
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fileError(path, err)
		}
		files = append(files, File{Name: entry.Name(), Content: string(data), Path: path})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, nil
}

// isText reports whether the file at path holds text, judged by its
// detected MIME type or any of that type's parents.
func isText(path string) (bool, string, error) {
	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return false, "", fileError(path, err)
	}
	for m := detected; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "text/") {
			return true, detected.String(), nil
		}
	}
	return false, detected.String(), nil
}

func matchesAny(matchers []glob.Glob, name string) bool {
	if len(matchers) == 0 {
		return true
	}
	for _, g := range matchers {
		if g.Match(name) {
			return true
		}
	}
	return false
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) || base == "" {
		return path
	}
	return filepath.Join(base, path)
}

func fileError(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return errors.NewFileError("file not found", path, errors.FileNotFound, err)
	case os.IsPermission(err):
		return errors.NewFileError("file access denied", path, errors.FileAccessDenied, err)
	default:
		return errors.NewFileError("cannot read file", path, errors.Unknown, err)
	}
}

// Sections returns the section ids in config order.
func (l *Library) Sections() []string {
	return append([]string(nil), l.order...)
}

// Files returns the resolved files of a section in tab order.
func (l *Library) Files(section string) []File {
	return l.sections[section]
}

// File looks up one file of a section by name.
func (l *Library) File(section, name string) (File, bool) {
	for _, f := range l.sections[section] {
		if f.Name == name {
			return f, true
		}
	}
	return File{}, false
}

// Contents returns the section's files as a key to content map.
func (l *Library) Contents(section string) map[string]string {
	files := l.sections[section]
	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.Name] = f.Content
	}
	return out
}

// Dirs returns the source directories that were read, for watching.
func (l *Library) Dirs() []string {
	return append([]string(nil), l.dirs...)
}
