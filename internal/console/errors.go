package console

import (
	"fmt"
	"strings"
)

// MalformedRangeError indicates a job-range expression with at least one
// token that is not an integer or a valid inclusive span. The expression
// is rejected as a unit; no partial expansion is returned.
type MalformedRangeError struct {
	Token string
}

func (e MalformedRangeError) Error() string {
	return fmt.Sprintf("malformed range token %q", e.Token)
}

// InvalidArgumentsError indicates bad flags or the wrong positional
// argument count for a command.
type InvalidArgumentsError struct {
	Reason string
}

func (e InvalidArgumentsError) Error() string {
	return e.Reason
}

// UnknownPayloadError indicates the payload name did not resolve to any
// module in the factory.
type UnknownPayloadError struct {
	Name string
}

func (e UnknownPayloadError) Error() string {
	return fmt.Sprintf("unknown payload %q", e.Name)
}

// UnresolvableTargetError indicates a payload exposes neither the local
// nor the remote key for the given target field ("host" or "port").
type UnresolvableTargetError struct {
	Field string
}

func (e UnresolvableTargetError) Error() string {
	return fmt.Sprintf("payload exposes no %s option to write to", e.Field)
}

// MissingOptionsError reports every required launch option absent from a
// handler invocation in a single diagnostic.
type MissingOptionsError struct {
	Options []string
}

func (e MissingOptionsError) Error() string {
	return "missing required options: " + strings.Join(e.Options, ", ")
}
