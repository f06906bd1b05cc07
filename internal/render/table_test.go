package render

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/warden-sh/warden-cli/internal/console"
	"github.com/warden-sh/warden-cli/internal/jobs"
	"github.com/warden-sh/warden-cli/internal/modules"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func launchJob(t *testing.T, manager *jobs.Manager, name string) *jobs.Job {
	t.Helper()
	catalog := modules.NewCatalog()
	handler := catalog.CreateHandler()
	handler.Datastore().Set(modules.KeyPayload, "shell/reverse_tcp")
	handler.Datastore().Set(modules.KeyLocalHost, "10.0.0.1")

	id, err := manager.Submit(handler, "shell/reverse_tcp on 10.0.0.1:4444")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if name != "" {
		if err := manager.Rename(id, name); err != nil {
			t.Fatalf("rename: %v", err)
		}
	}
	job, err := manager.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	return job
}

func TestRenderJobsEmpty(t *testing.T) {
	var buf bytes.Buffer

	NewJobTable().RenderJobs(&buf, nil, false)

	if !strings.Contains(buf.String(), "No active jobs") {
		t.Errorf("output %q should say there are no jobs", buf.String())
	}
}

func TestRenderJobsTable(t *testing.T) {
	manager := jobs.NewManager()
	defer manager.Shutdown()
	job := launchJob(t, manager, "my handler")

	var buf bytes.Buffer
	NewJobTable().RenderJobs(&buf, []*jobs.Job{job}, false)

	out := buf.String()
	if !strings.Contains(out, "ID") || !strings.Contains(out, "NAME") {
		t.Errorf("output %q missing table header", out)
	}
	if !strings.Contains(out, "my handler") {
		t.Errorf("output %q missing job name", out)
	}
	if strings.Contains(out, "PAYLOAD") {
		t.Error("non-verbose listing should not include the payload column")
	}
}

func TestRenderJobsVerbose(t *testing.T) {
	manager := jobs.NewManager()
	defer manager.Shutdown()
	job := launchJob(t, manager, "")

	var buf bytes.Buffer
	NewJobTable().RenderJobs(&buf, []*jobs.Job{job}, true)

	out := buf.String()
	if !strings.Contains(out, "PAYLOAD") || !strings.Contains(out, "STARTED") {
		t.Errorf("verbose output %q missing detail columns", out)
	}
	if !strings.Contains(out, "shell/reverse_tcp") {
		t.Errorf("verbose output %q missing payload name", out)
	}
}

func TestRenderJobDetail(t *testing.T) {
	manager := jobs.NewManager()
	defer manager.Shutdown()
	job := launchJob(t, manager, "")

	var buf bytes.Buffer
	NewJobTable().RenderJob(&buf, job)

	out := buf.String()
	for _, want := range []string{"Job 0", "generic/handler", "LHOST", "10.0.0.1"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail output %q missing %q", out, want)
		}
	}
}

// The console depends on this renderer through its Renderer interface.
var _ console.Renderer = (*JobTable)(nil)
