// pkg/repair/discover.go
package repair

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// collectArchives resolves opts into the list of archive paths to repair.
// An explicit Archives list wins; a file input is taken as-is; a directory is
// walked for *.zip files (case-insensitive), optionally filtered through
// .gitignore hierarchies. Results are sorted for stable processing order.
func collectArchives(opts *Options) ([]string, error) {
	if len(opts.Archives) > 0 {
		return opts.Archives, nil
	}

	fi, err := os.Stat(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if !fi.IsDir() {
		return []string{opts.InputPath}, nil
	}

	baseDir := filepath.Clean(opts.InputPath)

	var matcher *gitignoreMatcher
	if opts.UseGitignore {
		matcher, err = newGitignoreMatcher(baseDir)
		if err != nil {
			return nil, fmt.Errorf("load gitignore patterns: %w", err)
		}
	}

	var archives []string
	err = filepath.Walk(baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip inaccessible paths
			return nil
		}

		relPath, relErr := filepath.Rel(baseDir, path)
		if relErr != nil {
			return nil
		}

		if info.IsDir() {
			if relPath != "." && matcher.ShouldIgnoreDir(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), ".zip") {
			return nil
		}
		if matcher.ShouldIgnore(relPath) {
			return nil
		}

		archives = append(archives, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(archives)
	return archives, nil
}
