// Package console implements the command-driven control layer of the
// Warden console: routing operator commands to the job registry and the
// module factory, expanding job-id ranges, and orchestrating handler
// launches. Table formatting is delegated to a Renderer collaborator.
package console

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/warden-sh/warden-cli/internal/jobs"
	"github.com/warden-sh/warden-cli/internal/modules"
)

var (
	goodColor = color.New(color.FgGreen)
	badColor  = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
)

// Renderer formats jobs for display. The console hands it a Job or a
// sequence of Jobs plus a verbosity flag and never formats tables itself.
type Renderer interface {
	RenderJobs(w io.Writer, list []*jobs.Job, verbose bool)
	RenderJob(w io.Writer, job *jobs.Job)
}

// Command describes a routable console command.
type Command struct {
	Name        string
	Description string
	Usage       string

	run func(args []string) error
}

// Router maps a command name plus raw arguments onto the job-control
// operations. Each dispatch is stateless and independent; the registry
// is the only shared state between invocations.
type Router struct {
	registry jobs.Registry
	builder  *Builder
	renderer Renderer
	out      io.Writer

	presets  map[string]Preset
	commands map[string]*Command
}

// Preset is a named bundle of handler launch defaults. Explicit flags win
// over preset values.
type Preset struct {
	Payload       string
	Host          string
	Port          string
	Encoder       string
	ExitOnSession bool
}

// NewRouter creates a Router over the injected collaborators. Output,
// including per-identifier status lines, is written to out.
func NewRouter(registry jobs.Registry, factory modules.Factory, renderer Renderer, out io.Writer) *Router {
	r := &Router{
		registry: registry,
		renderer: renderer,
		out:      out,
	}
	r.builder = NewBuilder(factory, registry, func(format string, args ...any) {
		warnColor.Fprintf(out, "[!] "+format+"\n", args...)
	})

	r.commands = map[string]*Command{
		"jobs": {
			Name:        "jobs",
			Description: "List, inspect, and stop background jobs",
			Usage:       jobsUsage,
			run:         r.cmdJobs,
		},
		"kill": {
			Name:        "kill",
			Description: "Stop the jobs with the given ids",
			Usage:       "Usage: kill <id> [<id> ...]\n\nIds accept range syntax, e.g. kill 1 3-5\n",
			run:         r.cmdKill,
		},
		"rename_job": {
			Name:        "rename_job",
			Description: "Rename a job",
			Usage:       "Usage: rename_job <id> <name>\n",
			run:         r.cmdRenameJob,
		},
		"handler": {
			Name:        "handler",
			Description: "Launch a payload handler as a background job",
			Usage:       handlerUsage,
			run:         r.cmdHandler,
		},
		"help": {
			Name:        "help",
			Description: "Show available commands",
			Usage:       "Usage: help [command]\n",
			run:         r.cmdHelp,
		},
	}

	return r
}

// WithPresets registers named handler launch presets, usually loaded from
// the config file.
func (r *Router) WithPresets(presets map[string]Preset) *Router {
	r.presets = presets
	return r
}

// Dispatch routes a command name and its raw arguments to the matching
// command implementation.
func (r *Router) Dispatch(name string, args []string) error {
	cmd, ok := r.commands[name]
	if !ok {
		return InvalidArgumentsError{Reason: fmt.Sprintf("unknown command %q (try help)", name)}
	}
	return cmd.run(args)
}

// Commands returns the routable commands sorted by name.
func (r *Router) Commands() []*Command {
	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

// CommandNames returns the routable command names sorted alphabetically.
func (r *Router) CommandNames() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Router) cmdHelp(args []string) error {
	if len(args) > 0 {
		cmd, ok := r.commands[args[0]]
		if !ok {
			return InvalidArgumentsError{Reason: fmt.Sprintf("unknown command %q", args[0])}
		}
		fmt.Fprintf(r.out, "%s - %s\n\n%s", cmd.Name, cmd.Description, cmd.Usage)
		return nil
	}

	fmt.Fprintln(r.out, "Available commands:")
	for _, cmd := range r.Commands() {
		fmt.Fprintf(r.out, "  %-12s %s\n", cmd.Name, cmd.Description)
	}
	fmt.Fprintln(r.out, "\nType help <command> for more information.")
	return nil
}

// stopJobs stops each id in turn, printing exactly one status line per
// identifier so the outcome of every id in a batch can be audited. A
// missing id is reported and the batch continues.
func (r *Router) stopJobs(ids []int) {
	for _, id := range ids {
		if err := r.registry.Stop(id); err != nil {
			badColor.Fprintf(r.out, "Job %d not found\n", id)
			continue
		}
		goodColor.Fprintf(r.out, "Stopping job %d\n", id)
	}
}

// activeJobs snapshots the registry's jobs in ascending id order.
func (r *Router) activeJobs() []*jobs.Job {
	var list []*jobs.Job
	for _, id := range r.registry.IDs() {
		job, err := r.registry.Get(id)
		if err != nil {
			continue
		}
		list = append(list, job)
	}
	return list
}
