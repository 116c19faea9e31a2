package parser

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// ListModelFiles returns the .obj files under treeObjPath, searched
// recursively, in lexicographic order. Sorting keeps the single-model
// case deterministic across runs.
func ListModelFiles(treeObjPath string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(treeObjPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".obj") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning model directory: %w", err)
	}

	sort.Strings(files)
	return files, nil
}
