package inventory

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Classifier produces one immutable FileRecord per path from the lookup
// tables it was constructed with. Classification is a pure function of
// the path plus filesystem metadata, so a single Classifier is safe for
// concurrent use.
type Classifier struct {
	tables          *Tables
	shebangFallback bool
}

// NewClassifier returns a Classifier driven by the given tables.
// shebangFallback enables the secondary first-line language pass; it
// only fires when the extension lookup yields no language.
func NewClassifier(tables *Tables, shebangFallback bool) *Classifier {
	return &Classifier{tables: tables, shebangFallback: shebangFallback}
}

// Classify builds the FileRecord for one file under root. A stat
// failure (or an unreadable file during the shebang peek) returns an
// error; the caller counts that path as skipped instead of aborting.
//
// Field precedence, first match wins per field:
//  1. dependency kind by exact filename, independent of extension
//  2. language by extension (shebang pass only as an enabled fallback)
//  3. category by resolved extension lookup
//  4. data type for extensions in the data set
//  5. binary-ness by extension, independent of category and language
//
// Fields with no matching rule stay empty; rendering absence as
// "unknown" is left to presentation layers.
func (c *Classifier) Classify(root, path string, d fs.DirEntry) (FileRecord, error) {
	info, err := d.Info()
	if err != nil {
		return FileRecord{}, err
	}

	name := d.Name()
	ext := strings.ToLower(filepath.Ext(name))

	relDir, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil {
		relDir = "."
	}
	relDir = filepath.ToSlash(relDir)

	rec := FileRecord{
		RelativeDir:  relDir,
		Name:         name,
		Extension:    ext,
		Technologies: []string{},
		SizeBytes:    info.Size(),
		IsBinary:     c.tables.IsBinary(ext),
	}

	if kind, ok := c.tables.DependencyKindFor(name); ok {
		rec.DependencyKind = kind
	}

	if lang, ok := c.tables.LanguageFor(ext); ok {
		rec.Language = lang
	} else if c.shebangFallback {
		lang, err := detectShebangLanguage(path)
		if err != nil {
			return FileRecord{}, err
		}
		rec.Language = lang
	}

	if cat, ok := c.tables.CategoryFor(ext); ok {
		rec.Category = cat
	}

	if c.tables.IsData(ext) {
		rec.DataType = strings.TrimPrefix(ext, ".")
	}

	return rec, nil
}
