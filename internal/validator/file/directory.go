package file

import "strings"

// DirectoryConfigKind identifies how a DirectoryConfig value is parsed
type DirectoryConfigKind int

const (
	// Single is one directory path used as-is (after trimming)
	Single DirectoryConfigKind = iota
	// Delimited is a comma separated list of directories
	Delimited
	// List is an already split sequence of directories
	List
)

// DirectoryConfig is the accepted form of directory configuration
type DirectoryConfig struct {
	Kind  DirectoryConfigKind
	Path  string
	Paths []string
}

// SingleDir configures exactly one directory.
func SingleDir(path string) DirectoryConfig {
	return DirectoryConfig{Kind: Single, Path: path}
}

// DelimitedDirs configures directories from a string such as "a, b,c".
func DelimitedDirs(value string) DirectoryConfig {
	return DirectoryConfig{Kind: Delimited, Path: value}
}

// ListDirs configures directories from a sequence of paths.
func ListDirs(paths ...string) DirectoryConfig {
	return DirectoryConfig{Kind: List, Paths: paths}
}

func (c DirectoryConfig) entries() []string {
	var raw []string
	switch c.Kind {
	case Single:
		raw = []string{c.Path}
	case Delimited:
		raw = strings.Split(c.Path, ",")
	case List:
		raw = c.Paths
	}

	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// DirectoryList is an ordered list of directories a file is checked against.
// Duplicates are kept.
type DirectoryList struct {
	dirs []string
}

// NewDirectoryList builds a list from cfg.
func NewDirectoryList(cfg DirectoryConfig) *DirectoryList {
	dl := &DirectoryList{}
	dl.Set(cfg)
	return dl
}

// Set replaces the current directories.
func (dl *DirectoryList) Set(cfg DirectoryConfig) {
	dl.dirs = cfg.entries()
}

// Add appends directories, keeping existing entries.
func (dl *DirectoryList) Add(cfg DirectoryConfig) {
	dl.dirs = append(dl.dirs, cfg.entries()...)
}

// Slice returns a copy of the directories in insertion order.
func (dl *DirectoryList) Slice() []string {
	out := make([]string, len(dl.dirs))
	copy(out, dl.dirs)
	return out
}

// String joins the directories with "," and no spaces.
func (dl *DirectoryList) String() string {
	return strings.Join(dl.dirs, ",")
}

func (dl *DirectoryList) Len() int {
	return len(dl.dirs)
}
