package console

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/warden-sh/warden-cli/internal/jobs"
	"github.com/warden-sh/warden-cli/internal/modules"
)

func TestMain(m *testing.M) {
	// Output assertions below match plain text.
	color.NoColor = true
	os.Exit(m.Run())
}

// plainRenderer is a minimal Renderer for router tests.
type plainRenderer struct{}

func (plainRenderer) RenderJobs(w io.Writer, list []*jobs.Job, verbose bool) {
	for _, job := range list {
		fmt.Fprintf(w, "%d %s\n", job.ID, job.Name)
	}
}

func (plainRenderer) RenderJob(w io.Writer, job *jobs.Job) {
	fmt.Fprintf(w, "job %d %s\n", job.ID, job.Name)
}

func newTestRouter(t *testing.T) (*Router, *jobs.Manager, *bytes.Buffer) {
	t.Helper()
	manager := jobs.NewManager()
	t.Cleanup(manager.Shutdown)

	out := &bytes.Buffer{}
	router := NewRouter(manager, modules.NewCatalog(), plainRenderer{}, out)
	return router, manager, out
}

// launchTestHandler submits a handler job and returns its id.
func launchTestHandler(t *testing.T, router *Router) int {
	t.Helper()
	id, err := router.builder.Launch(HandlerRequest{
		Payload: "shell/reverse_tcp",
		Host:    "10.0.0.1",
		Port:    "4444",
	})
	if err != nil {
		t.Fatalf("launch: %v", err)
	}
	return id
}

func TestDispatchUnknownCommand(t *testing.T) {
	router, _, _ := newTestRouter(t)

	err := router.Dispatch("frobnicate", nil)

	var invalid InvalidArgumentsError
	if !errors.As(err, &invalid) {
		t.Fatalf("Dispatch() error = %v, want InvalidArgumentsError", err)
	}
}

func TestJobsDefaultList(t *testing.T) {
	router, _, out := newTestRouter(t)
	launchTestHandler(t, router)

	if err := router.Dispatch("jobs", nil); err != nil {
		t.Fatalf("jobs: %v", err)
	}
	if !strings.Contains(out.String(), "generic/handler") {
		t.Errorf("listing %q should include the running job", out.String())
	}
}

func TestJobsHelpShortCircuits(t *testing.T) {
	router, _, out := newTestRouter(t)
	launchTestHandler(t, router)

	if err := router.Dispatch("jobs", []string{"-h", "-K"}); err != nil {
		t.Fatalf("jobs -h: %v", err)
	}
	if !strings.Contains(out.String(), "Usage: jobs") {
		t.Errorf("output %q should be the usage text", out.String())
	}
	if strings.Contains(out.String(), "Stopping job") {
		t.Error("help must short-circuit before any kill")
	}
}

func TestJobsKillRangeMixedIDs(t *testing.T) {
	router, manager, out := newTestRouter(t)
	first := launchTestHandler(t, router)
	second := launchTestHandler(t, router)

	// Range covers both real jobs plus an id that never existed.
	if err := router.Dispatch("jobs", []string{"-k", "0-2,9"}); err != nil {
		t.Fatalf("jobs -k: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d status lines, want one per identifier (4): %q", len(lines), out.String())
	}
	if !strings.Contains(out.String(), "Job 9 not found") {
		t.Errorf("output %q should report the missing id individually", out.String())
	}

	for _, id := range []int{first, second} {
		if manager.Exists(id) {
			t.Errorf("job %d still registered after bulk kill", id)
		}
	}
}

func TestJobsKillMalformedRangeAborts(t *testing.T) {
	router, manager, _ := newTestRouter(t)
	id := launchTestHandler(t, router)

	err := router.Dispatch("jobs", []string{"-k", "0,a-3"})

	var malformed MalformedRangeError
	if !errors.As(err, &malformed) {
		t.Fatalf("jobs -k error = %v, want MalformedRangeError", err)
	}
	if !manager.Exists(id) {
		t.Error("malformed range must not stop any job")
	}
}

func TestJobsKillAllAuditsEveryID(t *testing.T) {
	router, manager, out := newTestRouter(t)
	launchTestHandler(t, router)
	launchTestHandler(t, router)
	launchTestHandler(t, router)

	if err := router.Dispatch("jobs", []string{"-K"}); err != nil {
		t.Fatalf("jobs -K: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d status lines, want 3: %q", len(lines), out.String())
	}
	if got := len(manager.IDs()); got != 0 {
		t.Errorf("%d jobs still registered after kill-all", got)
	}
}

func TestKillPositionalRanges(t *testing.T) {
	router, manager, out := newTestRouter(t)
	launchTestHandler(t, router)
	launchTestHandler(t, router)

	if err := router.Dispatch("kill", []string{"0", "1-1", "5"}); err != nil {
		t.Fatalf("kill: %v", err)
	}

	if !strings.Contains(out.String(), "Job 5 not found") {
		t.Errorf("output %q should report the missing id", out.String())
	}
	if got := len(manager.IDs()); got != 0 {
		t.Errorf("%d jobs still registered", got)
	}
}

func TestKillRequiresArguments(t *testing.T) {
	router, _, _ := newTestRouter(t)

	err := router.Dispatch("kill", nil)

	var invalid InvalidArgumentsError
	if !errors.As(err, &invalid) {
		t.Fatalf("kill error = %v, want InvalidArgumentsError", err)
	}
}

func TestRenameJob(t *testing.T) {
	router, manager, out := newTestRouter(t)
	id := launchTestHandler(t, router)

	if err := router.Dispatch("rename_job", []string{"0", "custom"}); err != nil {
		t.Fatalf("rename_job: %v", err)
	}

	job, err := manager.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if job.Name != "custom" {
		t.Errorf("job name = %q, want custom", job.Name)
	}
	if !strings.Contains(out.String(), "renamed to custom") {
		t.Errorf("output %q should report the new state", out.String())
	}
}

func TestRenameJobArgumentValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"one argument", []string{"0"}},
		{"three arguments", []string{"0", "a", "b"}},
		{"non-integer id", []string{"zero", "name"}},
		{"range instead of single id", []string{"0-2", "name"}},
		{"negative id", []string{"-1", "name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, _ := newTestRouter(t)

			err := router.Dispatch("rename_job", tt.args)

			var invalid InvalidArgumentsError
			if !errors.As(err, &invalid) {
				t.Errorf("rename_job %v error = %v, want InvalidArgumentsError", tt.args, err)
			}
		})
	}
}

func TestRenameMissingJobLeavesRegistryUnchanged(t *testing.T) {
	router, manager, _ := newTestRouter(t)
	launchTestHandler(t, router)
	before := manager.IDs()

	err := router.Dispatch("rename_job", []string{"42", "name"})

	if !errors.Is(err, jobs.ErrJobNotFound) {
		t.Fatalf("rename_job error = %v, want ErrJobNotFound", err)
	}
	after := manager.IDs()
	if len(before) != len(after) {
		t.Errorf("identifier set changed: %v -> %v", before, after)
	}
}

func TestHandlerCommandLaunchesJob(t *testing.T) {
	router, manager, out := newTestRouter(t)

	args := []string{"-p", "shell/reverse_tcp", "-H", "10.0.0.1", "-P", "4444", "-n", "custom"}
	if err := router.Dispatch("handler", args); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if !strings.Contains(out.String(), "Handler started as job 0") {
		t.Errorf("output %q should report the new job id", out.String())
	}
	job, err := manager.Get(0)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if job.Name != "custom" {
		t.Errorf("job name = %q, want custom", job.Name)
	}
}

func TestHandlerReportsAllMissingOptions(t *testing.T) {
	router, manager, _ := newTestRouter(t)

	err := router.Dispatch("handler", []string{"-p", "shell/reverse_tcp"})

	var missing MissingOptionsError
	if !errors.As(err, &missing) {
		t.Fatalf("handler error = %v, want MissingOptionsError", err)
	}
	if len(missing.Options) != 2 {
		t.Errorf("missing = %v, want host and port together", missing.Options)
	}
	if got := len(manager.IDs()); got != 0 {
		t.Errorf("%d jobs registered despite missing options", got)
	}
}

func TestHandlerPresetFillsUnsetOptions(t *testing.T) {
	router, manager, _ := newTestRouter(t)
	router.WithPresets(map[string]Preset{
		"lab": {Payload: "shell/bind_tcp", Host: "10.0.0.5", Port: "4444"},
	})

	// Explicit -P wins over the preset's port.
	args := []string{"--preset", "lab", "-P", "9001"}
	if err := router.Dispatch("handler", args); err != nil {
		t.Fatalf("handler --preset: %v", err)
	}

	job, err := manager.Get(0)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v, _ := job.Module().Datastore().Get(modules.KeyRemotePort); v != "9001" {
		t.Errorf("RPORT = %q, want explicit flag 9001 over preset", v)
	}
	if v, _ := job.Module().Datastore().Get(modules.KeyRemoteHost); v != "10.0.0.5" {
		t.Errorf("RHOST = %q, want preset host", v)
	}
}

func TestHandlerUnknownPreset(t *testing.T) {
	router, _, _ := newTestRouter(t)

	err := router.Dispatch("handler", []string{"--preset", "nope"})

	var invalid InvalidArgumentsError
	if !errors.As(err, &invalid) {
		t.Fatalf("handler error = %v, want InvalidArgumentsError", err)
	}
}

func TestHelpListsCommands(t *testing.T) {
	router, _, out := newTestRouter(t)

	if err := router.Dispatch("help", nil); err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, name := range []string{"jobs", "kill", "rename_job", "handler"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help output missing %q", name)
		}
	}
}
