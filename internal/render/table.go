// Package render formats jobs for terminal display on behalf of the
// console, which never builds tables itself.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/warden-sh/warden-cli/internal/jobs"
	"github.com/warden-sh/warden-cli/internal/modules"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	labelColor  = color.New(color.Bold)
	mutedColor  = color.New(color.Faint)
)

const startedFormat = "2006-01-02 15:04:05 MST"

// JobTable renders job listings and job detail with tabwriter columns.
type JobTable struct{}

// NewJobTable creates a JobTable renderer.
func NewJobTable() *JobTable {
	return &JobTable{}
}

// RenderJobs writes a table of the given jobs. Verbose adds start time
// and target detail columns.
func (t *JobTable) RenderJobs(w io.Writer, list []*jobs.Job, verbose bool) {
	if len(list) == 0 {
		mutedColor.Fprintln(w, "No active jobs.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	if verbose {
		headerColor.Fprintln(tw, "ID\tNAME\tPAYLOAD\tSTARTED")
		for _, job := range list {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
				job.ID,
				job.Name,
				payloadOf(job),
				job.StartedAt.Format(startedFormat),
			)
		}
		return
	}

	headerColor.Fprintln(tw, "ID\tNAME")
	for _, job := range list {
		fmt.Fprintf(tw, "%d\t%s\n", job.ID, job.Name)
	}
}

// RenderJob writes the detail view for a single job, including the
// module options it was launched with.
func (t *JobTable) RenderJob(w io.Writer, job *jobs.Job) {
	headerColor.Fprintf(w, "Job %d\n", job.ID)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  %s\t%s\n", labelColor.Sprint("Name:"), job.Name)
	if job.Info != "" {
		fmt.Fprintf(tw, "  %s\t%s\n", labelColor.Sprint("Info:"), job.Info)
	}
	fmt.Fprintf(tw, "  %s\t%s\n", labelColor.Sprint("Started:"), job.StartedAt.Format(startedFormat))
	tw.Flush()

	mod := job.Module()
	if mod == nil || mod.Datastore().Len() == 0 {
		return
	}

	mutedColor.Fprintln(w, "  Options:")
	otw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, key := range mod.Datastore().Keys() {
		value, _ := mod.Datastore().Get(key)
		fmt.Fprintf(otw, "    %s\t%s\n", key, value)
	}
	otw.Flush()
}

func payloadOf(job *jobs.Job) string {
	mod := job.Module()
	if mod == nil {
		return "-"
	}
	if name, ok := mod.Datastore().Get(modules.KeyPayload); ok && name != "" {
		return name
	}
	return "-"
}
