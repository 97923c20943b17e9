package ocr

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Runner abstracts the external OCR tooling (tesseract, pdftoppm) so tests
// can substitute canned output for real binaries.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// execRunner shells out and logs through the owning component's logger, so
// tool failures land next to the page and document events they belong to.
type execRunner struct {
	logger *slog.Logger
}

func newExecRunner(logger *slog.Logger) execRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return execRunner{logger: logger}
}

func (r execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		// a submission deadline kills the process; keep the ctx state visible
		r.logger.Warn("ocr tool failed",
			"tool", filepath.Base(name),
			"target", targetArg(args),
			"duration_ms", elapsed,
			"ctx_err", ctx.Err(),
			"error", err,
			"stderr", truncate(errb.String(), 8<<10),
		)
	} else {
		r.logger.Debug("ocr tool done",
			"tool", filepath.Base(name),
			"target", targetArg(args),
			"duration_ms", elapsed,
			"stdout_bytes", out.Len(),
		)
	}
	return out.Bytes(), errb.Bytes(), err
}

// targetArg picks the input file out of a tool invocation for logging:
// the one positional argument with an extension. tesseract takes the page
// image first, pdftoppm takes the PDF before the output prefix; flags and
// language packs carry no dot.
func targetArg(args []string) string {
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			continue
		}
		if strings.ContainsRune(filepath.Base(a), '.') {
			return filepath.Base(a)
		}
	}
	return ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
