package assets

import (
	"embed"
	"fmt"
	"path"
	"sort"

	"github.com/automoto/panicblob/leveldata"
)

//go:embed all:levels
var levelFS embed.FS

// DefaultLevel is the layout the vignette ships with.
const DefaultLevel = "levels/panic.tmx"

// LoadLayout parses one embedded level.
func LoadLayout(levelPath string) (*leveldata.Layout, error) {
	return leveldata.Load(levelFS, levelPath)
}

// LevelPaths lists the embedded .tmx files in name order.
func LevelPaths() ([]string, error) {
	entries, err := levelFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			paths = append(paths, path.Join("levels", entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
