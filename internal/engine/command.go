package engine

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	filePlaceholder   = "{file}"
	outputPlaceholder = "{output}"
)

// CommandEngine wraps an external recognizer CLI. The configured argv is run
// with {file} replaced by the document path and {output} by a per-run scratch
// directory. The recognized text is read from stdout, or from the first file
// matching OutputGlob inside the scratch directory when the glob is set.
type CommandEngine struct {
	name       string
	argv       []string
	outputGlob string
	timeout    time.Duration
}

func NewCommandEngine(name string, argv []string, outputGlob string, timeout time.Duration) *CommandEngine {
	return &CommandEngine{
		name:       name,
		argv:       argv,
		outputGlob: outputGlob,
		timeout:    timeout,
	}
}

func (e *CommandEngine) Name() string { return e.name }

// Initialize checks that the configured executable is resolvable.
func (e *CommandEngine) Initialize(ctx context.Context) error {
	if len(e.argv) == 0 {
		return fmt.Errorf("engine %s: empty command", e.name)
	}
	if _, err := exec.LookPath(e.argv[0]); err != nil {
		return fmt.Errorf("engine %s: %w", e.name, err)
	}
	zap.S().Named("command_engine").Infow("Command engine initialized", "engine", e.name, "binary", e.argv[0])
	return nil
}

func (e *CommandEngine) ExtractText(ctx context.Context, path string) (string, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	outDir, err := os.MkdirTemp("", "ocrdiff-"+e.name+"-*")
	if err != nil {
		return "", NewExtractionError(e.name, "create scratch dir", err)
	}
	defer os.RemoveAll(outDir)

	argv := make([]string, len(e.argv))
	for i, arg := range e.argv {
		arg = strings.ReplaceAll(arg, filePlaceholder, path)
		arg = strings.ReplaceAll(arg, outputPlaceholder, outDir)
		argv[i] = arg
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = "command failed"
		}
		return "", NewExtractionError(e.name, msg, err)
	}

	if e.outputGlob == "" {
		return strings.TrimSpace(stdout.String()), nil
	}

	matches, err := filepath.Glob(filepath.Join(outDir, e.outputGlob))
	if err != nil {
		return "", NewExtractionError(e.name, "bad output glob", err)
	}
	if len(matches) == 0 {
		return "", NewExtractionError(e.name, fmt.Sprintf("no output matching %q", e.outputGlob), nil)
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		return "", NewExtractionError(e.name, "read output file", err)
	}

	return strings.TrimSpace(string(data)), nil
}

func (e *CommandEngine) Cleanup() error {
	return nil
}
