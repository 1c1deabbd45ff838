package domain

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Settings is the configuration surface consumed by the cleanup pipeline.
// Values come from an optional YAML file, overridden by CODEMAID_*
// environment variables (a .env file is honored when present).
type Settings struct {
	// RunBuiltinCleanupEnabled gates the protect-and-clean pass.
	RunBuiltinCleanupEnabled bool `yaml:"run_builtin_cleanup_enabled"`

	// SkipDuringAutosave suppresses the pass when the caller signals an
	// autosave context.
	SkipDuringAutosave bool `yaml:"skip_during_autosave"`

	// RootNamespace is the reserved standard-library root token.
	RootNamespace string `yaml:"root_namespace"`

	// ProtectedPatternExpression is a ||-delimited list of exact-match
	// line patterns that must survive the destructive cleanup command.
	ProtectedPatternExpression string `yaml:"protected_patterns"`

	// CleanupCommand is the external "remove unused" argv; the file path
	// is appended as the final argument. Empty means the built-in
	// heuristic remover is used.
	CleanupCommand []string `yaml:"cleanup_command"`

	// SortCommand is the external "sort" argv for hosts without the
	// merged capability.
	SortCommand []string `yaml:"sort_command"`

	// MergedCleanup reports that CleanupCommand both removes unused
	// directives and sorts, so SortCommand is not invoked.
	MergedCleanup bool `yaml:"merged_cleanup"`

	// ReportsDir is where run reports are written.
	ReportsDir string `yaml:"reports_dir"`
}

// DefaultSettings returns the configuration used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		RunBuiltinCleanupEnabled: true,
		SkipDuringAutosave:       true,
		RootNamespace:            "System",
		MergedCleanup:            true,
		ReportsDir:               ".codemaid-reports",
	}
}

// LoadSettings reads the YAML file at path when it exists and applies
// environment overrides on top of the defaults. A missing file is not an
// error; an unparsable one is.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)

		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &s); err != nil {
				return Settings{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Settings{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	// Populate the environment from a local .env, if any.
	_ = godotenv.Load()

	applyEnv(&s)

	return s, nil
}

func applyEnv(s *Settings) {
	if v, ok := os.LookupEnv("CODEMAID_CLEANUP_ENABLED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			s.RunBuiltinCleanupEnabled = b
		}
	}

	if v, ok := os.LookupEnv("CODEMAID_SKIP_AUTOSAVE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			s.SkipDuringAutosave = b
		}
	}

	if v, ok := os.LookupEnv("CODEMAID_ROOT_NAMESPACE"); ok && v != "" {
		s.RootNamespace = v
	}

	if v, ok := os.LookupEnv("CODEMAID_PROTECTED_PATTERNS"); ok {
		s.ProtectedPatternExpression = v
	}

	if v, ok := os.LookupEnv("CODEMAID_REPORTS_DIR"); ok && v != "" {
		s.ReportsDir = v
	}
}

const patternCacheSize = 16

// patternCache keeps parsed pattern lists keyed by the raw expression, so
// repeated passes only re-split when the expression changes.
var patternCache, _ = lru.New[string, []string](patternCacheSize)

// ProtectedPatterns returns the parsed protected-pattern list for the
// configured expression. An empty or unparsable expression yields an empty
// list: no protection applied, no error.
func (s Settings) ProtectedPatterns() []string {
	expr := s.ProtectedPatternExpression

	if cached, ok := patternCache.Get(expr); ok {
		return cached
	}

	patterns := splitPatternExpression(expr)
	patternCache.Add(expr, patterns)

	return patterns
}

func splitPatternExpression(expr string) []string {
	patterns := []string{}

	for _, seg := range strings.Split(expr, "||") {
		if trimmed := strings.TrimSpace(seg); trimmed != "" {
			patterns = append(patterns, trimmed)
		}
	}

	return patterns
}
