// Package plugin contributes the Python-project task set to the summon task
// registry. Each task shells out to one or more external developer tools
// (black, isort, flake8, pylint, mypy, pytest, coverage) with a fixed
// argument template parameterized by the project configuration.
//
// The host task runner owns plugin discovery; this package only supplies the
// registrar. The standalone CLI in internal/cmd drives the same registrar so
// every task can be exercised without the host.
package plugin

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/summonkit/summon-python/internal/errors"
	"github.com/summonkit/summon-python/internal/execute"
	"github.com/summonkit/summon-python/internal/logging"
	"github.com/summonkit/summon-python/internal/project"
	"github.com/summonkit/summon-python/internal/scaffold"
	"github.com/summonkit/summon-python/internal/task"
)

// Options tune how individual tasks build their command templates.
// The CLI fills these from flags before registration.
type Options struct {
	// Check makes the format task verify instead of rewrite (--check).
	Check bool
	// FullReport makes pylint print its detailed report (-r y).
	FullReport bool
	// Coverage makes the test task collect coverage over the project modules.
	Coverage bool
	// CoverageHTML additionally renders the html coverage report after a
	// coverage test run.
	CoverageHTML bool
}

// Registrar builds the task set for one loaded project configuration.
// It is stateless after construction; the configuration is captured once and
// passed to every action explicitly.
type Registrar struct {
	cfg    *project.Config
	runner execute.Runner
	logger *logging.Logger
	opts   Options
}

// NewRegistrar creates a Registrar. A nil logger is replaced with a no-op
// logger.
func NewRegistrar(cfg *project.Config, runner execute.Runner, logger *logging.Logger, opts Options) *Registrar {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Registrar{cfg: cfg, runner: runner, logger: logger, opts: opts}
}

// Register returns the full set of tasks this plugin contributes.
// Task names are unique; registration itself spawns nothing.
func (r *Registrar) Register() (*task.Registry, error) {
	reg := task.NewRegistry()

	defs := []task.Definition{
		{Name: "all-checks", Summary: "Run all checks (static checks and tests) over all code", Action: r.allChecks},
		{Name: "coverage-html", Summary: "Generate an html coverage report", Action: r.coverageHTML},
		{Name: "format", Summary: "Run all formatters", Action: r.format},
		{Name: "lint", Summary: "Run all linters", Action: r.lint},
		{Name: "setup", Summary: "Setup sane defaults for a python project", Action: r.setup},
		{Name: "static-checks", Summary: "Run all static checks over all code", Action: r.staticChecks},
		{Name: "test", Summary: "Run tests", Action: r.test},
		{Name: "typecheck", Summary: "Run the type checker", Action: r.typecheck},
	}

	for _, def := range defs {
		if err := reg.Register(def); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// run dispatches one tool invocation in the project root.
func (r *Registrar) run(ctx context.Context, args []string) (execute.Result, error) {
	r.logger.WithTool(args[0]).Info("running tool", "args", args)
	return r.runner.Run(ctx, execute.CommandSpec{Args: args, Dir: r.cfg.Root})
}

// runAll dispatches every template in order, collecting all results.
// A failing tool does not stop later tools; only an unstartable process does.
func (r *Registrar) runAll(ctx context.Context, templates ...[]string) ([]execute.Result, error) {
	results := make([]execute.Result, 0, len(templates))
	for _, args := range templates {
		res, err := r.run(ctx, args)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// format runs black and isort over the given files, or over every module of
// the project when no files are given. An empty target set spawns nothing.
func (r *Registrar) format(ctx context.Context, files []string) ([]execute.Result, error) {
	targets := r.cfg.TargetsOrAll(files)
	if len(targets) == 0 {
		return nil, nil
	}

	args := []string{"-q"}
	if r.opts.Check {
		args = append(args, "--check")
	}
	args = append(args, targets...)

	return r.runAll(ctx,
		append([]string{"black"}, args...),
		append([]string{"isort"}, args...),
	)
}

// lint runs flake8 and pylint over the given files, or over every module of
// the project when no files are given.
func (r *Registrar) lint(ctx context.Context, files []string) ([]execute.Result, error) {
	targets := r.cfg.TargetsOrAll(files)
	if len(targets) == 0 {
		return nil, nil
	}

	report := "n"
	if r.opts.FullReport {
		report = "y"
	}

	return r.runAll(ctx,
		append([]string{"flake8"}, targets...),
		append([]string{"pylint", "-r", report}, targets...),
	)
}

// typecheck runs mypy over the given files, or over every module of the
// project when no files are given.
func (r *Registrar) typecheck(ctx context.Context, files []string) ([]execute.Result, error) {
	targets := r.cfg.TargetsOrAll(files)
	if len(targets) == 0 {
		return nil, nil
	}

	return r.runAll(ctx, append([]string{"mypy"}, targets...))
}

// test runs pytest with the configured test modules appended to its argument
// list, then extra pass-through arguments. With no configured test modules
// pytest performs its own discovery.
func (r *Registrar) test(ctx context.Context, extraArgs []string) ([]execute.Result, error) {
	args := []string{"pytest"}
	if r.opts.Coverage && len(r.cfg.ProjectModules) > 0 {
		args = append(args, "--cov="+strings.Join(r.cfg.ProjectModules, ","))
	}
	args = append(args, r.cfg.TestModules...)
	args = append(args, extraArgs...)

	results, err := r.runAll(ctx, args)
	if err != nil {
		return results, err
	}

	if r.opts.Coverage && r.opts.CoverageHTML {
		htmlResults, err := r.coverageHTML(ctx, nil)
		results = append(results, htmlResults...)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// coverageHTML renders the html coverage report from the last test run.
func (r *Registrar) coverageHTML(ctx context.Context, _ []string) ([]execute.Result, error) {
	return r.runAll(ctx, []string{"coverage", "html"})
}

// staticChecks runs every non-mutating check over all code: linters, the
// type checker, and the formatters in check mode.
func (r *Registrar) staticChecks(ctx context.Context, _ []string) ([]execute.Result, error) {
	var results []execute.Result

	lintResults, err := r.lint(ctx, nil)
	results = append(results, lintResults...)
	if err != nil {
		return results, err
	}

	typeResults, err := r.typecheck(ctx, nil)
	results = append(results, typeResults...)
	if err != nil {
		return results, err
	}

	checker := *r
	checker.opts.Check = true
	formatResults, err := checker.format(ctx, nil)
	results = append(results, formatResults...)
	return results, err
}

// allChecks runs static checks followed by the test suite.
func (r *Registrar) allChecks(ctx context.Context, _ []string) ([]execute.Result, error) {
	results, err := r.staticChecks(ctx, nil)
	if err != nil {
		return results, err
	}

	testResults, err := r.test(ctx, nil)
	results = append(results, testResults...)
	return results, err
}

// setup scaffolds project defaults: a GitHub Actions workflow, a pre-commit
// hook config, and a mypy strictness section in pyproject.toml.
// It searches upward for pyproject.toml independently of which config file
// governs the project, so a summon.toml alongside a pyproject.toml does not
// block setup.
func (r *Registrar) setup(_ context.Context, _ []string) ([]execute.Result, error) {
	pyproject := project.FindFileUpward("pyproject.toml", r.cfg.Root)
	if pyproject == "" {
		return nil, errors.NewConfigError("setup requires a pyproject.toml project", errors.ErrProjectFileMissing).
			WithFile(r.cfg.File)
	}

	base := filepath.Dir(pyproject)
	r.logger.WithTask("setup").Info("scaffolding project defaults", "root", base)
	return nil, scaffold.Apply(base, pyproject)
}
