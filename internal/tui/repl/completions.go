package repl

import (
	"sort"
	"strings"
)

// Completer provides tab completion for the console
type Completer struct {
	commands []string
	payloads []string
}

// NewCompleter creates a completer over the given command names
func NewCompleter(commands []string) *Completer {
	return &Completer{commands: commands}
}

// SetPayloads updates the list of known payload names for completion
func (c *Completer) SetPayloads(payloads []string) {
	c.payloads = payloads
}

// Complete returns completion suggestions for the given input
func (c *Completer) Complete(input string) []string {
	input = strings.TrimLeft(input, " ")
	parts := strings.Fields(input)

	// Completing the command name
	if len(parts) == 0 || (len(parts) == 1 && !strings.HasSuffix(input, " ")) {
		prefix := ""
		if len(parts) == 1 {
			prefix = parts[0]
		}
		return c.completeCommand(prefix)
	}

	// Completing arguments for a command
	argPrefix := ""
	if !strings.HasSuffix(input, " ") && len(parts) > 1 {
		argPrefix = parts[len(parts)-1]
	}

	switch parts[0] {
	case "help":
		return c.completeCommand(argPrefix)
	case "handler":
		// Payload names follow -p; completing them anywhere in the
		// argument list is close enough for a console.
		return c.completePayloads(argPrefix)
	}

	return nil
}

func (c *Completer) completeCommand(prefix string) []string {
	var matches []string
	for _, name := range c.commands {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches
}

func (c *Completer) completePayloads(prefix string) []string {
	var matches []string
	for _, name := range c.payloads {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches
}

// FindLongestCommonPrefix finds the longest common prefix among suggestions
func FindLongestCommonPrefix(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	if len(suggestions) == 1 {
		return suggestions[0]
	}

	prefix := suggestions[0]
	for _, s := range suggestions[1:] {
		for i := 0; i < len(prefix) && i < len(s); i++ {
			if prefix[i] != s[i] {
				prefix = prefix[:i]
				break
			}
		}
		if len(s) < len(prefix) {
			prefix = prefix[:len(s)]
		}
	}

	return prefix
}
