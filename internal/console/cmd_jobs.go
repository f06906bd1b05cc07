package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/warden-sh/warden-cli/internal/jobs"
)

const jobsUsage = `Usage: jobs [-h] [-l] [-v] [-k <range>] [-K] [-i <range>]

  -h, --help           Show this message
  -l, --list           List running jobs (default when no flags are given)
  -v, --verbose        Include start time and target detail in listings
  -k, --kill <range>   Stop the jobs in the given id range, e.g. 1,3-5,7
  -K, --kill-all       Stop all running jobs
  -i, --info <range>   Show detail for the jobs in the given id range
`

func (r *Router) cmdJobs(args []string) error {
	fs := pflag.NewFlagSet("jobs", pflag.ContinueOnError)
	// pflag prints its own diagnostics on parse failure; the router owns
	// error reporting, so silence the FlagSet itself.
	fs.SetOutput(io.Discard)

	help := fs.BoolP("help", "h", false, "")
	fs.BoolP("list", "l", false, "")
	verbose := fs.BoolP("verbose", "v", false, "")
	killExpr := fs.StringP("kill", "k", "", "")
	killAll := fs.BoolP("kill-all", "K", false, "")
	infoExpr := fs.StringP("info", "i", "", "")

	if err := fs.Parse(args); err != nil {
		return InvalidArgumentsError{Reason: err.Error()}
	}
	if *help {
		fmt.Fprint(r.out, jobsUsage)
		return nil
	}

	switch {
	case *killExpr != "":
		ids, err := ExpandRange(*killExpr)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Fprintln(r.out, "No jobs matched.")
			return nil
		}
		r.stopJobs(ids)

	case *killAll:
		ids := r.registry.IDs()
		if len(ids) == 0 {
			fmt.Fprintln(r.out, "No running jobs.")
			return nil
		}
		r.stopJobs(ids)

	case *infoExpr != "":
		ids, err := ExpandRange(*infoExpr)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Fprintln(r.out, "No jobs matched.")
			return nil
		}
		for _, id := range ids {
			job, err := r.registry.Get(id)
			if err != nil {
				badColor.Fprintf(r.out, "Job %d not found\n", id)
				continue
			}
			r.renderer.RenderJob(r.out, job)
		}

	default:
		// -l is the default action, with or without the flag.
		r.renderer.RenderJobs(r.out, r.activeJobs(), *verbose)
	}

	return nil
}

func (r *Router) cmdKill(args []string) error {
	if len(args) == 0 {
		return InvalidArgumentsError{Reason: "usage: kill <id> [<id> ...]"}
	}

	// Every argument must parse before anything is stopped; a malformed
	// token aborts the whole command with no partial kill.
	var ids []int
	seen := make(map[int]bool)
	for _, arg := range args {
		expanded, err := ExpandRange(arg)
		if err != nil {
			return err
		}
		for _, id := range expanded {
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		fmt.Fprintln(r.out, "No jobs matched.")
		return nil
	}

	r.stopJobs(ids)
	return nil
}

func (r *Router) cmdRenameJob(args []string) error {
	if len(args) != 2 {
		return InvalidArgumentsError{Reason: "usage: rename_job <id> <name>"}
	}

	id, err := parseID(args[0])
	if err != nil {
		return InvalidArgumentsError{Reason: fmt.Sprintf("job id must be a single non-negative integer, got %q", args[0])}
	}

	if err := r.registry.Rename(id, args[1]); err != nil {
		if errors.Is(err, jobs.ErrJobNotFound) {
			return fmt.Errorf("job %d: %w", id, err)
		}
		return err
	}

	goodColor.Fprintf(r.out, "Job %d renamed to %s\n", id, args[1])
	return nil
}
