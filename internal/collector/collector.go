// Package collector resolves glob queries into the ordered list of files a
// run will scan. It expands ** globs, descends into directories up to an
// optional depth limit, and honors .gitignore rules on the way down.
package collector

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Collector finds the files to scan for a set of glob queries.
type Collector struct {
	queries  []string
	maxDepth int // -1 = unlimited
	hidden   bool
	noIgnore bool
}

// New creates a Collector for the given queries. Each query is a literal
// path, a directory, or a doublestar glob.
func New(queries []string) *Collector {
	return &Collector{queries: queries, maxDepth: -1}
}

// MaxDepth limits directory descent. Depth 0 collects only a matched
// directory's own files. Negative means unlimited.
func (c *Collector) MaxDepth(depth int) *Collector {
	c.maxDepth = depth
	return c
}

// IncludeHidden toggles descending into dotfiles and dot-directories.
// Explicitly queried paths are never filtered.
func (c *Collector) IncludeHidden(on bool) *Collector {
	c.hidden = on
	return c
}

// NoIgnore disables .gitignore processing.
func (c *Collector) NoIgnore(on bool) *Collector {
	c.noIgnore = on
	return c
}

// Collect consumes the collector and returns every file the queries reach,
// in query order. Unreadable directories are recorded and skipped; the
// joined error is returned alongside whatever was found.
func (c *Collector) Collect() ([]string, error) {
	var files []string
	var errs []error

	for _, query := range c.queries {
		roots, err := doublestar.FilepathGlob(query)
		if err != nil {
			errs = append(errs, fmt.Errorf("bad glob %q: %w", query, err))
			continue
		}
		if len(roots) == 0 {
			errs = append(errs, fmt.Errorf("no files match %q", query))
			continue
		}
		for _, root := range roots {
			if err := c.recurse(root, 0, nil, &files); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return files, errors.Join(errs...)
}

func (c *Collector) recurse(path string, depth int, layers []*ignoreLayer, files *[]string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.IsDir() {
		*files = append(*files, path)
		return nil
	}
	if c.maxDepth >= 0 && c.maxDepth < depth {
		return nil
	}

	if !c.noIgnore {
		if layer := loadIgnoreLayer(path); layer != nil {
			layers = append(layers, layer)
		}
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", path, err)
	}

	var errs []error
	for _, entry := range entries {
		name := entry.Name()
		if !c.hidden && strings.HasPrefix(name, ".") {
			continue
		}
		child := filepath.Join(path, name)
		if isIgnored(layers, child, entry.IsDir()) {
			continue
		}
		if err := c.recurse(child, depth+1, layers, files); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ignoreLayer is one directory's compiled .gitignore. Rules apply to the
// whole subtree below their directory.
type ignoreLayer struct {
	dir    string
	parser *ignore.GitIgnore
}

func loadIgnoreLayer(dir string) *ignoreLayer {
	parser, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		// No .gitignore or unreadable: nothing to layer.
		return nil
	}
	return &ignoreLayer{dir: dir, parser: parser}
}

func isIgnored(layers []*ignoreLayer, path string, isDir bool) bool {
	for _, layer := range layers {
		rel, err := filepath.Rel(layer.dir, path)
		if err != nil {
			continue
		}
		if isDir {
			rel += "/"
		}
		if layer.parser.MatchesPath(rel) {
			return true
		}
	}
	return false
}
