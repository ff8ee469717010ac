package catalog

import (
	"os"
	"path/filepath"
)

// Locator resolves measurement files below a base directory laid out as
// <base>/<basis_lower>/<file>.
type Locator struct {
	BaseDir string
}

// Resolution is the outcome of resolving one category for one basis.
type Resolution struct {
	Category Category
	Path     string
	Found    bool
}

// NewLocator returns a Locator rooted at baseDir.
func NewLocator(baseDir string) Locator {
	return Locator{BaseDir: baseDir}
}

// Dir returns the directory holding the files of basis.
func (l Locator) Dir(basis string) string {
	return filepath.Join(l.BaseDir, BasisKey(basis))
}

// Path returns the expected path of the category's file, whether or not it exists.
func (l Locator) Path(basis string, c Category) string {
	return filepath.Join(l.Dir(basis), c.FileName(basis))
}

// Resolve returns the file path for c under basis and whether it exists as a
// regular file. A missing file is not an error.
func (l Locator) Resolve(basis string, c Category) (string, bool) {
	path := l.Path(basis, c)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return path, false
	}
	return path, true
}

// Inventory resolves every category for basis, filters first.
func (l Locator) Inventory(basis string) []Resolution {
	all := All()
	out := make([]Resolution, 0, len(all))
	for _, c := range all {
		path, ok := l.Resolve(basis, c)
		out = append(out, Resolution{Category: c, Path: path, Found: ok})
	}
	return out
}
