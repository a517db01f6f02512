package inventory

// Tables holds the lookup data the classifier is driven by. A Tables
// value is immutable once built; tests and callers with custom rules
// construct their own instead of mutating the defaults.
type Tables struct {
	// LanguageByExt maps a lowercased extension (with dot) to a
	// language tag. Every key also yields the "code" category unless a
	// later override claims it.
	LanguageByExt map[string]string

	// CategoryOverrides is applied in order after the code category is
	// derived from LanguageByExt. Later rules win, so override
	// precedence is the slice order, not map iteration order.
	CategoryOverrides []CategoryRule

	// BinaryExts is the set of extensions treated as binary.
	BinaryExts map[string]struct{}

	// DataExts is the set of extensions recognized as structured data.
	DataExts map[string]struct{}

	// DependencyKindByName maps an exact filename (case-sensitive) to
	// a dependency-manifest kind.
	DependencyKindByName map[string]string

	// SkipDirs is the set of directory base names pruned by the walker.
	SkipDirs map[string]struct{}

	// categoryByExt is the resolved category lookup, built once from
	// LanguageByExt and CategoryOverrides.
	categoryByExt map[string]string
}

// CategoryRule assigns one category to a group of extensions.
type CategoryRule struct {
	Category   string
	Extensions []string
}

// resolve builds the flattened category lookup: every language
// extension defaults to "code", then each override rule is merged in
// order so the last rule claiming an extension wins.
func (t *Tables) resolve() {
	t.categoryByExt = make(map[string]string, len(t.LanguageByExt))
	for ext := range t.LanguageByExt {
		t.categoryByExt[ext] = CategoryCode
	}
	for _, rule := range t.CategoryOverrides {
		for _, ext := range rule.Extensions {
			t.categoryByExt[ext] = rule.Category
		}
	}
}

// LanguageFor returns the language tag for an extension.
func (t *Tables) LanguageFor(ext string) (string, bool) {
	lang, ok := t.LanguageByExt[ext]
	return lang, ok
}

// CategoryFor returns the resolved category for an extension.
func (t *Tables) CategoryFor(ext string) (string, bool) {
	cat, ok := t.categoryByExt[ext]
	return cat, ok
}

// DependencyKindFor returns the manifest kind for an exact filename.
func (t *Tables) DependencyKindFor(name string) (string, bool) {
	kind, ok := t.DependencyKindByName[name]
	return kind, ok
}

// IsBinary reports whether the extension is in the binary set.
func (t *Tables) IsBinary(ext string) bool {
	_, ok := t.BinaryExts[ext]
	return ok
}

// IsData reports whether the extension is in the data set.
func (t *Tables) IsData(ext string) bool {
	_, ok := t.DataExts[ext]
	return ok
}

// ShouldSkipDir reports whether a directory base name is denylisted.
func (t *Tables) ShouldSkipDir(name string) bool {
	_, ok := t.SkipDirs[name]
	return ok
}

// Category values produced by the default tables.
const (
	CategoryCode           = "code"
	CategoryConfig         = "config"
	CategoryDocumentation  = "documentation"
	CategoryScript         = "script"
	CategoryInfrastructure = "infrastructure"
	CategoryData           = "data"
	CategoryAsset          = "asset"
)

// DefaultTables returns the built-in classification tables.
func DefaultTables() *Tables {
	t := &Tables{
		LanguageByExt: map[string]string{
			".c":     "c",
			".cpp":   "cpp",
			".cs":    "csharp",
			".css":   "css",
			".go":    "go",
			".h":     "c-header",
			".hpp":   "cpp-header",
			".html":  "html",
			".java":  "java",
			".js":    "javascript",
			".jsx":   "javascript",
			".kt":    "kotlin",
			".m":     "objective-c",
			".md":    "markdown",
			".mm":    "objective-c++",
			".php":   "php",
			".py":    "python",
			".rb":    "ruby",
			".rs":    "rust",
			".sass":  "sass",
			".scala": "scala",
			".scss":  "scss",
			".sql":   "sql",
			".swift": "swift",
			".ts":    "typescript",
			".tsx":   "typescript",
			".vb":    "vb",
		},
		CategoryOverrides: []CategoryRule{
			{Category: CategoryConfig, Extensions: []string{
				".yml", ".yaml", ".json", ".toml", ".ini", ".cfg", ".conf",
			}},
			{Category: CategoryDocumentation, Extensions: []string{
				".md", ".rst", ".txt", ".adoc",
			}},
			{Category: CategoryScript, Extensions: []string{
				".sh", ".ps1", ".bat", ".cmd",
			}},
			{Category: CategoryInfrastructure, Extensions: []string{
				".tf", ".dockerfile",
			}},
			{Category: CategoryData, Extensions: []string{
				".csv", ".jsonl", ".xml", ".tsv", ".parquet", ".sqlite", ".db", ".ndjson",
			}},
			{Category: CategoryAsset, Extensions: []string{
				".svg", ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff",
				".ico", ".webp", ".ttf", ".otf", ".woff", ".woff2",
				".mp4", ".mov", ".avi", ".zip", ".tar", ".gz", ".bz2",
				".rar", ".7z", ".pdf", ".exe", ".dll", ".so", ".dylib",
			}},
		},
		BinaryExts: extSet(
			".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".ico",
			".webp", ".svg", ".zip", ".tar", ".gz", ".bz2", ".rar", ".7z",
			".pdf", ".exe", ".dll", ".so", ".dylib", ".ttf", ".otf",
			".woff", ".woff2", ".mp4", ".mov", ".avi",
		),
		DataExts: extSet(
			".csv", ".jsonl", ".xml", ".tsv", ".parquet", ".sqlite", ".db", ".ndjson",
		),
		DependencyKindByName: map[string]string{
			"requirements.txt":  "python-requirements",
			"pyproject.toml":    "python-pyproject",
			"Pipfile":           "python-pipenv",
			"Pipfile.lock":      "python-pipenv-lock",
			"poetry.lock":       "python-poetry-lock",
			"package.json":      "node-package",
			"package-lock.json": "node-lock",
			"pnpm-lock.yaml":    "node-pnpm-lock",
			"yarn.lock":         "node-yarn-lock",
			"go.mod":            "go-mod",
			"go.sum":            "go-sum",
			"pom.xml":           "maven-pom",
			"Gemfile":           "ruby-gemfile",
			"Gemfile.lock":      "ruby-gem-lock",
			"Cargo.toml":        "rust-cargo",
			"Cargo.lock":        "rust-cargo-lock",
		},
		SkipDirs: extSet(
			".git", "node_modules", ".venv", "venv", "__pycache__",
			"dist", "build", "out", "tmp", ".pytest_cache", ".mypy_cache",
			".vscode",
		),
	}
	t.resolve()
	return t
}

func extSet(exts ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		s[e] = struct{}{}
	}
	return s
}
