// Package project loads the declarative configuration of the hosting Python
// project. It discovers the config file by walking upward from a base
// directory, parses it as TOML, and exposes the plugin options under
// tool.summon.plugins.python together with the Poetry package layout.
package project

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/summonkit/summon-python/internal/errors"
)

// ConfigFileCandidates are the recognized config file names, in priority
// order. A summon.toml anywhere up the tree wins over any pyproject.toml.
var ConfigFileCandidates = []string{"summon.toml", "pyproject.toml"}

// Config is the plugin configuration loaded from the hosting project.
// It is immutable after Load: actions receive it explicitly instead of
// re-reading the file at call time.
type Config struct {
	// Root is the directory containing the config file. Tasks run here.
	Root string
	// File is the absolute path of the config file that was loaded.
	File string

	// TestModules are the directories containing tests, from the
	// test-modules option. Empty means the test runner discovers tests
	// at its conventional default locations.
	TestModules []string
	// ExtraModules are additional modules to lint and format, from the
	// extra-modules option. Typically helper scripts outside the package.
	ExtraModules []string
	// ProjectModules are the Python packages of the project, discovered
	// from the Poetry metadata in pyproject.toml. Empty when the project
	// declares no Poetry packages.
	ProjectModules []string
}

// AllModules returns the sorted union of project, extra, and test modules.
// This is the default target set for linting and formatting.
func (c *Config) AllModules() []string {
	seen := make(map[string]bool)
	var all []string
	for _, group := range [][]string{c.ProjectModules, c.ExtraModules, c.TestModules} {
		for _, m := range group {
			if !seen[m] {
				seen[m] = true
				all = append(all, m)
			}
		}
	}
	sort.Strings(all)
	return all
}

// TargetsOrAll returns args when non-empty, otherwise AllModules.
func (c *Config) TargetsOrAll(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return c.AllModules()
}

// Load discovers and parses the project configuration, starting the upward
// search at baseDir. A syntactically valid file with absent options yields a
// Config with empty slices, never an error; a recognized option with the
// wrong shape fails with a ConfigError wrapping ErrBadOptionType.
func Load(baseDir string) (*Config, error) {
	file, err := FindConfigFile(baseDir)
	if err != nil {
		return nil, err
	}

	raw, err := parseFile(file)
	if err != nil {
		return nil, err
	}

	root := filepath.Dir(file)

	testModules, err := readStringListOption(raw, file, "test-modules")
	if err != nil {
		return nil, err
	}
	extraModules, err := readStringListOption(raw, file, "extra-modules")
	if err != nil {
		return nil, err
	}

	projectModules, err := discoverProjectModules(raw, root)
	if err != nil {
		return nil, err
	}

	return &Config{
		Root:           root,
		File:           file,
		TestModules:    testModules,
		ExtraModules:   extraModules,
		ProjectModules: projectModules,
	}, nil
}

// FindConfigFile walks upward from baseDir looking for each candidate
// filename in turn. Candidate priority beats directory proximity: a
// summon.toml in a distant ancestor wins over a nearby pyproject.toml.
func FindConfigFile(baseDir string) (string, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return "", errors.Wrap(err, "resolving base directory")
	}

	for _, candidate := range ConfigFileCandidates {
		if found := reverseSearch(candidate, abs); found != "" {
			return found, nil
		}
	}

	return "", errors.NewConfigError(
		"searched for "+strings.Join(ConfigFileCandidates, ", "),
		errors.ErrProjectFileMissing,
	)
}

// FindFileUpward looks for name in baseDir and every ancestor of baseDir.
// Returns the empty string when the search fails. Unlike FindConfigFile it
// searches for one specific filename, regardless of which config file
// governs the project.
func FindFileUpward(name, baseDir string) string {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return ""
	}
	return reverseSearch(name, abs)
}

// reverseSearch looks for name in dir and every ancestor of dir.
// Returns the empty string when the search fails.
func reverseSearch(name, dir string) string {
	for {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func parseFile(file string) (map[string]any, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.NewConfigError("reading config file", err).WithFile(file)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewConfigError("parsing TOML", err).WithFile(file)
	}
	return raw, nil
}

// lookup walks a parsed TOML tree along path. Returns nil when any
// intermediate key is absent or not a table.
func lookup(raw map[string]any, path ...string) any {
	var obj any = raw
	for _, key := range path {
		table, ok := obj.(map[string]any)
		if !ok {
			return nil
		}
		obj = table[key]
	}
	return obj
}

// pluginOptionPath is where the plugin's options live in the config tree.
var pluginOptionPath = []string{"tool", "summon", "plugins", "python"}

// readStringListOption reads tool.summon.plugins.python.<option>.
// Absent options yield nil; present options must be lists of strings.
func readStringListOption(raw map[string]any, file, option string) ([]string, error) {
	value := lookup(raw, append(pluginOptionPath, option)...)
	if value == nil {
		return nil, nil
	}

	list, ok := asStringList(value)
	if !ok {
		return nil, errors.NewConfigError("expected a list of strings", errors.ErrBadOptionType).
			WithOption(option).
			WithFile(file)
	}
	return list, nil
}

func asStringList(value any) ([]string, bool) {
	items, ok := value.([]any)
	if !ok {
		return nil, false
	}

	list := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		list = append(list, s)
	}
	return list, true
}

// discoverProjectModules resolves the project's Python packages from Poetry
// metadata: explicit tool.poetry.packages entries when present, otherwise
// the tool.poetry.name convention (dashes become underscores, matching a
// directory or a single-file module).
func discoverProjectModules(raw map[string]any, root string) ([]string, error) {
	if entries, ok := lookup(raw, "tool", "poetry", "packages").([]any); ok {
		return modulesFromPackageEntries(entries, root)
	}

	name := lookup(raw, "tool", "poetry", "name")
	if name == nil {
		return nil, nil
	}
	nameStr, ok := name.(string)
	if !ok {
		return nil, errors.NewConfigError("expected a string", errors.ErrBadOptionType).
			WithOption("tool.poetry.name")
	}

	module := strings.ReplaceAll(nameStr, "-", "_")
	return globModules(root, module, module+".py")
}

// modulesFromPackageEntries expands Poetry package entries. Each entry has
// an include glob and an optional from directory prefix.
func modulesFromPackageEntries(entries []any, root string) ([]string, error) {
	var patterns []string
	for _, entry := range entries {
		table, ok := entry.(map[string]any)
		if !ok {
			return nil, errors.NewConfigError("expected a table", errors.ErrBadOptionType).
				WithOption("tool.poetry.packages")
		}

		include, ok := table["include"].(string)
		if !ok {
			return nil, errors.NewConfigError("package entry missing include", errors.ErrBadOptionType).
				WithOption("tool.poetry.packages")
		}

		if from, ok := table["from"].(string); ok {
			include = filepath.Join(from, include)
		}
		patterns = append(patterns, include)
	}

	return globModules(root, patterns...)
}

// globModules expands patterns relative to root and returns the matches as
// root-relative paths.
func globModules(root string, patterns ...string) ([]string, error) {
	var modules []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, errors.NewConfigError("invalid package glob", err).WithOption(pattern)
		}
		for _, match := range matches {
			rel, err := filepath.Rel(root, match)
			if err != nil {
				rel = match
			}
			modules = append(modules, rel)
		}
	}
	sort.Strings(modules)
	return modules, nil
}
