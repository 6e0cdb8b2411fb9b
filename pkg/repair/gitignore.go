// pkg/repair/gitignore.go
package repair

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// gitignoreMatcher filters discovered archives through .gitignore patterns.
// The directory tree is pre-scanned once for .gitignore files; each is
// compiled and keyed by the relative directory that contains it ("" = root).
type gitignoreMatcher struct {
	baseDir  string
	matchers map[string]*ignore.GitIgnore
}

// newGitignoreMatcher pre-scans baseDir for .gitignore files.
// Returns nil when none exist so callers can skip filtering entirely.
func newGitignoreMatcher(baseDir string) (*gitignoreMatcher, error) {
	gm := &gitignoreMatcher{
		baseDir:  filepath.Clean(baseDir),
		matchers: make(map[string]*ignore.GitIgnore),
	}

	err := filepath.Walk(gm.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || filepath.Base(path) != ".gitignore" {
			return nil
		}

		relDir, err := filepath.Rel(gm.baseDir, filepath.Dir(path))
		if err != nil {
			return nil
		}
		if relDir == "." {
			relDir = ""
		}

		matcher, err := ignore.CompileIgnoreFile(path)
		if err != nil {
			// Skip unreadable .gitignore files silently
			return nil
		}
		gm.matchers[relDir] = matcher
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(gm.matchers) == 0 {
		return nil, nil
	}
	return gm, nil
}

// ShouldIgnore reports whether the file at relPath (relative to baseDir, any
// separator) matches an ignore pattern. Patterns are checked from the root
// .gitignore down to the file's own directory; negation works within a single
// file, per go-gitignore semantics.
func (gm *gitignoreMatcher) ShouldIgnore(relPath string) bool {
	if gm == nil || len(gm.matchers) == 0 {
		return false
	}

	relPath = filepath.ToSlash(relPath)
	for _, dir := range ancestorDirs(relPath) {
		matcher, ok := gm.matchers[dir]
		if !ok {
			continue
		}
		pathToCheck := relPath
		if dir != "" {
			pathToCheck = strings.TrimPrefix(relPath, dir+"/")
		}
		if matcher.MatchesPath(pathToCheck) {
			return true
		}
	}
	return false
}

// ShouldIgnoreDir reports whether a whole directory subtree can be pruned
// during the walk. Only directory-specific patterns ("build/") prune; file
// patterns that happen to match a directory name do not.
func (gm *gitignoreMatcher) ShouldIgnoreDir(relPath string) bool {
	if gm == nil || len(gm.matchers) == 0 {
		return false
	}
	return gm.ShouldIgnore(relPath+"/") && !gm.ShouldIgnore(relPath)
}

// ancestorDirs lists the directories from the root down to relPath's parent.
// For "a/b/f.zip" it returns ["", "a", "a/b"].
func ancestorDirs(relPath string) []string {
	dirs := []string{""}

	parent := filepath.ToSlash(filepath.Dir(relPath))
	if parent == "." || parent == "" {
		return dirs
	}

	current := ""
	for _, part := range strings.Split(parent, "/") {
		if part == "" {
			continue
		}
		if current == "" {
			current = part
		} else {
			current = current + "/" + part
		}
		dirs = append(dirs, current)
	}
	return dirs
}
