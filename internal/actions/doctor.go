package actions

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"

	goversion "github.com/hashicorp/go-version"

	"gissy.dev/gissy/internal/checks"
	"gissy.dev/gissy/internal/git"
	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/tui"
)

// MinGitVersion is the oldest git that supports `branch --sort` with --format
const MinGitVersion = "2.13.0"

var gitVersionPattern = regexp.MustCompile(`(\d+\.\d+(?:\.\d+)?)`)

// DoctorOptions contains options for the doctor command
type DoctorOptions struct {
	// LookPath resolves check binaries; defaults to exec.LookPath
	LookPath func(file string) (string, error)
}

// DoctorReport collects the findings printed by Doctor
type DoctorReport struct {
	Warnings []string
	Errors   []string
}

// Healthy reports whether no hard check failed
func (r *DoctorReport) Healthy() bool {
	return len(r.Errors) == 0
}

// Doctor runs diagnostic checks on the gissy environment and repository
func Doctor(ctx context.Context, rt *runtime.Context, opts DoctorOptions) (*DoctorReport, error) {
	splog := rt.Splog
	d := &diagnosis{rt: rt, report: &DoctorReport{}}
	if opts.LookPath == nil {
		opts.LookPath = exec.LookPath
	}

	splog.Info("Running gissy doctor...")
	splog.Newline()

	splog.Info("Environment:")
	d.checkGit(ctx)
	d.checkConfig()
	d.checkCredential()
	d.checkCommands(opts.LookPath)
	splog.Newline()

	splog.Info("Repository:")
	d.checkRepository(ctx)

	report := d.report
	splog.Newline()
	switch {
	case len(report.Errors) > 0:
		splog.Info("Doctor found %d error(s) and %d warning(s).", len(report.Errors), len(report.Warnings))
		return report, fmt.Errorf("doctor found %d error(s)", len(report.Errors))
	case len(report.Warnings) > 0:
		splog.Info("Doctor found %d warning(s). Your gissy setup is mostly healthy.", len(report.Warnings))
	default:
		splog.Info("✅ All checks passed. Your gissy setup is healthy.")
	}
	return report, nil
}

type diagnosis struct {
	rt     *runtime.Context
	report *DoctorReport
}

func (d *diagnosis) ok(format string, args ...interface{}) {
	d.rt.Splog.Info("  ✅ "+format, args...)
}

func (d *diagnosis) warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	d.report.Warnings = append(d.report.Warnings, msg)
	d.rt.Splog.Info("  ⚠️  %s", tui.ColorYellow(msg))
}

func (d *diagnosis) fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	d.report.Errors = append(d.report.Errors, msg)
	d.rt.Splog.Info("  ❌ %s", tui.ColorRed(msg))
}

func (d *diagnosis) checkGit(ctx context.Context) {
	result, err := d.rt.Runner.Run(ctx, "git", []string{"version"}, git.RunOptions{Dir: d.rt.Dir()})
	if err != nil || !result.Success() {
		d.fail("git is not installed or not in PATH")
		return
	}

	raw := result.Output()
	installed, err := ParseGitVersion(raw)
	if err != nil {
		d.warn("could not parse git version from %q", raw)
		return
	}
	minimum := goversion.Must(goversion.NewVersion(MinGitVersion))
	if installed.LessThan(minimum) {
		d.fail("git %s is too old, gissy needs %s or newer", installed, MinGitVersion)
		return
	}
	d.ok("git %s", installed)
}

// ParseGitVersion extracts the numeric version from `git version` output,
// ignoring vendor suffixes such as "(Apple Git-143)" or ".windows.1".
func ParseGitVersion(output string) (*goversion.Version, error) {
	match := gitVersionPattern.FindString(output)
	if match == "" {
		return nil, fmt.Errorf("no version in %q", output)
	}
	return goversion.NewVersion(match)
}

func (d *diagnosis) checkConfig() {
	if src := d.rt.Config.Source; src != "" {
		d.ok("config loaded from %s", src)
		return
	}
	d.ok("no config file, using defaults (run 'gissy config init' to create one)")
}

func (d *diagnosis) checkCredential() {
	if !d.rt.Config.UseAI {
		d.ok("AI messages disabled (useAI: false)")
		return
	}
	if d.rt.Credential == nil {
		d.warn("useAI is enabled but no credential source is configured")
		return
	}
	if _, ok := d.rt.Credential.APIKey(); !ok {
		d.warn("useAI is enabled but %s is not set; the fallback message will be used", d.rt.Credential.Describe())
		return
	}
	d.ok("AI credential found (%s)", d.rt.Credential.Describe())
}

func (d *diagnosis) checkCommands(lookPath func(string) (string, error)) {
	for _, check := range checks.FromConfig(d.rt.Config) {
		argv, err := checks.Parse(check.Command)
		if err != nil {
			d.warn("%s command: %v", check.Name, err)
			continue
		}
		if _, err := lookPath(argv[0]); err != nil {
			d.warn("%s command %q not found in PATH (commit with --skip-checks or change it in your gissy config)", check.Name, argv[0])
			continue
		}
		d.ok("%s command: %s", check.Name, check.Command)
	}
}

func (d *diagnosis) checkRepository(ctx context.Context) {
	gw := d.rt.Gateway
	if !gw.IsRepository(ctx) {
		d.fail("not in a git repository")
		return
	}
	d.ok("git repository at %s", d.rt.Dir())

	if branch, ok := gw.CurrentBranch(ctx); ok {
		d.ok("on branch %s", branch)
	} else {
		d.warn("not on a branch (detached HEAD or no commits yet)")
	}

	if info := gw.RepoInfo(ctx); info != nil {
		d.ok("remote 'origin' is %s", info.OriginURL)
	} else {
		d.warn("remote 'origin' is not configured; push will fail")
	}

	if up := gw.UnpushedCommitCount(ctx); up.HasUpstream {
		d.ok("upstream configured (%d unpushed %s)", up.Ahead, pluralize(up.Ahead, "commit", "commits"))
	} else {
		d.warn("current branch has no upstream")
	}
}
