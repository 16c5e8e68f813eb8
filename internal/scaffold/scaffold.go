// Package scaffold writes project defaults for the setup task: a GitHub
// Actions workflow running the summon checks, a pre-commit hook config, and
// a mypy strictness section merged into pyproject.toml.
package scaffold

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/summonkit/summon-python/internal/errors"
)

// Apply writes all scaffolding for the project rooted at root.
// pyprojectPath is the pyproject.toml file to receive the mypy section.
func Apply(root, pyprojectPath string) error {
	if err := WriteGitHubActions(root); err != nil {
		return err
	}
	if err := WritePreCommitConfig(root); err != nil {
		return err
	}
	return MergeMypyConfig(pyprojectPath)
}

// workflow mirrors the GitHub Actions schema, reduced to the fields the
// generated workflow uses.
type workflow struct {
	Name string   `yaml:"name"`
	On   []string `yaml:"on"`
	Jobs jobs     `yaml:"jobs"`
}

type jobs struct {
	Lint job `yaml:"lint"`
	Test job `yaml:"test"`
}

type job struct {
	Strategy strategy `yaml:"strategy"`
	Name     string   `yaml:"name"`
	RunsOn   string   `yaml:"runs-on"`
	Steps    []step   `yaml:"steps"`
}

type strategy struct {
	Matrix matrix `yaml:"matrix"`
}

type matrix struct {
	Python []string `yaml:"python"`
	OS     []string `yaml:"os"`
}

type step struct {
	Name string            `yaml:"name,omitempty"`
	Uses string            `yaml:"uses,omitempty"`
	With map[string]string `yaml:"with,omitempty"`
	Run  string            `yaml:"run,omitempty"`
}

const installDeps = "python -m pip install --upgrade pip\npip install poetry\npoetry install\n"

// githubActionsWorkflow builds the summon.yml workflow: a static-checks job
// and a cross-OS test job with coverage upload.
func githubActionsWorkflow() workflow {
	setupSteps := func() []step {
		return []step{
			{Uses: "actions/checkout@v2"},
			{
				Name: "Set up Python ${{ matrix.python }}",
				Uses: "actions/setup-python@v1",
				With: map[string]string{"python-version": "${{ matrix.python }}"},
			},
			{Name: "Install dependencies", Run: installDeps},
		}
	}

	lint := job{
		Strategy: strategy{Matrix: matrix{Python: []string{"3.10"}, OS: []string{"ubuntu-latest"}}},
		Name:     "Static checks",
		RunsOn:   "${{ matrix.os }}",
		Steps: append(setupSteps(), step{
			Name: "Run static checks",
			Run:  "poetry run summon static-checks",
		}),
	}

	test := job{
		Strategy: strategy{Matrix: matrix{Python: []string{"3.10"}, OS: []string{"ubuntu-latest", "windows-latest"}}},
		Name:     "Python ${{ matrix.python }} on ${{ matrix.os }}",
		RunsOn:   "${{ matrix.os }}",
		Steps: append(setupSteps(),
			step{Name: "Run tests", Run: "poetry run summon test --coverage"},
			step{Name: "Generate coverage.xml", Run: "poetry run coverage xml"},
			step{Uses: "codecov/codecov-action@v1", With: map[string]string{"fail_ci_if_error": "false"}},
		),
	}

	return workflow{
		Name: "Summon Tasks",
		On:   []string{"push"},
		Jobs: jobs{Lint: lint, Test: test},
	}
}

// WriteGitHubActions writes .github/workflows/summon.yml under root.
func WriteGitHubActions(root string) error {
	dir := filepath.Join(root, ".github", "workflows")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "creating workflows directory")
	}

	data, err := yaml.Marshal(githubActionsWorkflow())
	if err != nil {
		return errors.Wrap(err, "marshaling workflow")
	}

	path := filepath.Join(dir, "summon.yml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "writing workflow")
	}
	return nil
}

// preCommitConfig mirrors the .pre-commit-config.yaml schema.
type preCommitConfig struct {
	Repos []preCommitRepo `yaml:"repos"`
}

type preCommitRepo struct {
	Repo  string          `yaml:"repo"`
	Rev   string          `yaml:"rev,omitempty"`
	Hooks []preCommitHook `yaml:"hooks"`
}

type preCommitHook struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name,omitempty"`
	Entry         string   `yaml:"entry,omitempty"`
	Language      string   `yaml:"language,omitempty"`
	Types         []string `yaml:"types,omitempty,flow"`
	RequireSerial bool     `yaml:"require_serial,omitempty"`
}

func preCommitHooks() preCommitConfig {
	return preCommitConfig{
		Repos: []preCommitRepo{
			{
				Repo: "https://github.com/pre-commit/pre-commit-hooks",
				Rev:  "v4.2.0",
				Hooks: []preCommitHook{
					{ID: "check-yaml"},
					{ID: "end-of-file-fixer"},
					{ID: "trailing-whitespace"},
				},
			},
			{
				Repo: "local",
				Hooks: []preCommitHook{
					{
						ID:            "linters",
						Name:          "Lint",
						Entry:         "poetry run summon lint --no-full-report",
						Language:      "system",
						Types:         []string{"python"},
						RequireSerial: true,
					},
					{
						ID:       "formatters",
						Name:     "Format",
						Entry:    "poetry run summon format",
						Language: "system",
						Types:    []string{"python"},
					},
				},
			},
		},
	}
}

// WritePreCommitConfig writes .pre-commit-config.yaml under root.
func WritePreCommitConfig(root string) error {
	data, err := yaml.Marshal(preCommitHooks())
	if err != nil {
		return errors.Wrap(err, "marshaling pre-commit config")
	}

	path := filepath.Join(root, ".pre-commit-config.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "writing pre-commit config")
	}
	return nil
}

// MergeMypyConfig sets tool.mypy.strict = true in the given pyproject.toml.
// The file is edited textually, never re-marshaled, so comments, table
// ordering, and quoting elsewhere in the document stay byte-identical.
// An already-present strict value is not overwritten and leaves the file
// untouched.
func MergeMypyConfig(pyprojectPath string) error {
	data, err := os.ReadFile(pyprojectPath)
	if err != nil {
		return errors.NewConfigError("reading pyproject.toml", err).WithFile(pyprojectPath)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return errors.NewConfigError("parsing pyproject.toml", err).WithFile(pyprojectPath)
	}

	if tool, ok := doc["tool"].(map[string]any); ok {
		if mypy, ok := tool["mypy"].(map[string]any); ok {
			if _, exists := mypy["strict"]; exists {
				return nil
			}
		}
	}

	out := insertMypyStrict(string(data))

	// The edited document must still parse; bail out without writing if the
	// insertion point heuristic produced invalid TOML.
	var check map[string]any
	if err := toml.Unmarshal([]byte(out), &check); err != nil {
		return errors.NewConfigError("editing pyproject.toml", err).WithFile(pyprojectPath)
	}

	if err := os.WriteFile(pyprojectPath, []byte(out), 0644); err != nil {
		return errors.Wrap(err, "writing pyproject.toml")
	}
	return nil
}

// insertMypyStrict adds strict = true inside an explicit [tool.mypy] table
// when one exists, otherwise appends the table. Declaring [tool.mypy] at the
// end is valid TOML even when subtables like [tool.mypy.overrides] already
// declared it implicitly.
func insertMypyStrict(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "[tool.mypy]" {
			continue
		}
		edited := make([]string, 0, len(lines)+1)
		edited = append(edited, lines[:i+1]...)
		edited = append(edited, "strict = true")
		edited = append(edited, lines[i+1:]...)
		return strings.Join(edited, "\n")
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if content != "" {
		content += "\n"
	}
	return content + "[tool.mypy]\nstrict = true\n"
}
