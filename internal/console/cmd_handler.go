package console

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

const handlerUsage = `Usage: handler [-h] -p <payload> -P <port> -H <host> [-x] [-e <encoder>] [-n <name>] [--preset <name>]

  -h, --help             Show this message
  -p, --payload <name>   Payload to handle, e.g. shell/reverse_tcp
  -H, --host <host>      Host for the payload's connection
  -P, --port <port>      Port for the payload's connection
  -x, --exit-on-session  Stop the handler after the first session
  -e, --encoder <name>   Stage encoder to apply
  -n, --name <name>      Custom name for the launched job
      --preset <name>    Fill unset options from a configured preset
`

func (r *Router) cmdHandler(args []string) error {
	fs := pflag.NewFlagSet("handler", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	help := fs.BoolP("help", "h", false, "")
	payload := fs.StringP("payload", "p", "", "")
	host := fs.StringP("host", "H", "", "")
	port := fs.StringP("port", "P", "", "")
	exitOnSession := fs.BoolP("exit-on-session", "x", false, "")
	encoder := fs.StringP("encoder", "e", "", "")
	jobName := fs.StringP("name", "n", "", "")
	preset := fs.String("preset", "", "")

	if err := fs.Parse(args); err != nil {
		return InvalidArgumentsError{Reason: err.Error()}
	}
	if *help {
		fmt.Fprint(r.out, handlerUsage)
		return nil
	}

	req := HandlerRequest{
		Payload:       *payload,
		Host:          *host,
		Port:          *port,
		Encoder:       *encoder,
		JobName:       *jobName,
		ExitOnSession: *exitOnSession,
	}

	if *preset != "" {
		p, ok := r.presets[*preset]
		if !ok {
			return InvalidArgumentsError{Reason: fmt.Sprintf("unknown preset %q", *preset)}
		}
		req = applyPreset(req, p)
	}

	id, err := r.builder.Launch(req)
	if err != nil {
		return err
	}

	goodColor.Fprintf(r.out, "Handler started as job %d\n", id)
	return nil
}

// applyPreset fills only the fields the operator left unset; explicit
// flags always win over preset values.
func applyPreset(req HandlerRequest, p Preset) HandlerRequest {
	if req.Payload == "" {
		req.Payload = p.Payload
	}
	if req.Host == "" {
		req.Host = p.Host
	}
	if req.Port == "" {
		req.Port = p.Port
	}
	if req.Encoder == "" {
		req.Encoder = p.Encoder
	}
	if p.ExitOnSession {
		req.ExitOnSession = true
	}
	return req
}
