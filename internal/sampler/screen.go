package sampler

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/go-ps"

	"github.com/jmylchreest/colormine/internal/colour"
)

// Tool is an external screen colour picker that prints a hex colour on stdout.
type Tool struct {
	Name string
	Args []string
	// Compositors lists process names for which this tool is the natural choice.
	Compositors []string
}

// DefaultTools lists the supported picker tools in fallback order.
var DefaultTools = []Tool{
	{Name: "hyprpicker", Args: []string{"--format=hex", "--no-fancy"}, Compositors: []string{"Hyprland"}},
	{Name: "xcolor", Args: []string{"--format", "hex"}},
	{Name: "gpick", Args: []string{"--pick", "--single", "--output"}},
}

// Screen samples a colour from the screen through an external picker tool.
type Screen struct {
	// Tool forces a specific tool by name when non-empty.
	Tool string

	tools     []Tool
	logger    hclog.Logger
	lookPath  func(string) (string, error)
	run       func(ctx context.Context, path string, args ...string) ([]byte, error)
	processes func() ([]string, error)
}

// NewScreen creates a screen sampler using DefaultTools.
func NewScreen(logger hclog.Logger) *Screen {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Screen{
		tools:     DefaultTools,
		logger:    logger,
		lookPath:  exec.LookPath,
		run:       runTool,
		processes: runningExecutables,
	}
}

func runTool(ctx context.Context, path string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, path, args...).Output() // #nosec G204 - path comes from the fixed tool list
}

// runningExecutables lists the executable names of all running processes.
func runningExecutables() ([]string, error) {
	processes, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to get process list: %w", err)
	}

	names := make([]string, 0, len(processes))
	for _, p := range processes {
		names = append(names, p.Executable())
	}
	return names, nil
}

// Available reports the tool that Sample would use, if any.
func (s *Screen) Available() (Tool, string, bool) {
	for _, tool := range s.candidates() {
		if path, err := s.lookPath(tool.Name); err == nil {
			return tool, path, true
		}
	}
	return Tool{}, "", false
}

// candidates orders the tools: an explicit override first, then tools matching
// a running compositor, then the rest in declaration order.
func (s *Screen) candidates() []Tool {
	if s.Tool != "" {
		for _, t := range s.tools {
			if t.Name == s.Tool {
				return []Tool{t}
			}
		}
		return []Tool{{Name: s.Tool}}
	}

	running := map[string]bool{}
	if names, err := s.processes(); err != nil {
		s.logger.Debug("process scan failed", "error", err)
	} else {
		for _, n := range names {
			running[n] = true
		}
	}

	var preferred, rest []Tool
	for _, t := range s.tools {
		matched := false
		for _, c := range t.Compositors {
			if running[c] {
				matched = true
				break
			}
		}
		if matched {
			preferred = append(preferred, t)
		} else {
			rest = append(rest, t)
		}
	}
	return append(preferred, rest...)
}

// Sample runs the picker and returns the chosen colour in "#RRGGBB" form.
// It returns ErrUnsupported when no tool is installed and ErrCancelled when the
// tool exits without printing a colour.
func (s *Screen) Sample(ctx context.Context) (string, error) {
	tool, path, ok := s.Available()
	if !ok {
		return "", ErrUnsupported
	}

	s.logger.Debug("sampling screen", "tool", tool.Name, "path", path)
	out, err := s.run(ctx, path, tool.Args...)
	if ctx.Err() != nil {
		return "", ErrCancelled
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			s.logger.Debug("picker exited without a colour", "tool", tool.Name, "code", exitErr.ExitCode())
			return "", ErrCancelled
		}
		return "", fmt.Errorf("failed to run %s: %w", tool.Name, err)
	}

	hex, ok := parsePickerOutput(string(out))
	if !ok {
		return "", ErrCancelled
	}
	return hex, nil
}

// parsePickerOutput finds the last "#"-prefixed hex colour printed by a picker
// tool. Bare words are ignored so messages like "decade" are not colours.
func parsePickerOutput(out string) (string, bool) {
	fields := strings.Fields(out)
	for i := len(fields) - 1; i >= 0; i-- {
		if !strings.HasPrefix(fields[i], "#") {
			continue
		}
		if rgb, err := colour.ParseHex(fields[i]); err == nil {
			return rgb.Hex(), true
		}
	}
	return "", false
}
