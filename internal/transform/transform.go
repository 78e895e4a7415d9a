package transform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/RobbyCBennett/Subs/internal/config"
	"github.com/RobbyCBennett/Subs/internal/model"
	"github.com/RobbyCBennett/Subs/internal/subtitle"
)

// Options selects how a job recovers when the rewrite fails.
type Options struct {
	Strategy  string
	BackupDir string
	Logger    *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func rewriterFor(job model.Job) subtitle.Rewriter {
	return subtitle.Rewriter{
		Offsets:      job.Offsets,
		TargetFormat: job.Format == model.FormatVTT,
	}
}

// Apply shifts the job's input into its output using the selected recovery strategy.
func Apply(job model.Job, opts Options) (subtitle.Stats, error) {
	log := opts.logger().With("input", job.Input, "output", job.Output, "strategy", opts.Strategy)
	log.Debug("rewriting", "begin", job.Offsets.Begin.Milliseconds(), "end", job.Offsets.End.Milliseconds())

	var (
		stats subtitle.Stats
		err   error
	)
	switch opts.Strategy {
	case config.StrategyBackup, "":
		stats, err = applyBackup(job, opts.BackupDir, log)
	case config.StrategyRename:
		stats, err = applyRename(job, log)
	default:
		return stats, fmt.Errorf("unknown strategy %q", opts.Strategy)
	}
	if err != nil {
		return stats, err
	}
	log.Info("rewrote subtitles", "lines", stats.Lines, "cues", stats.Cues, "dropped", stats.Dropped)
	return stats, nil
}

// applyBackup copies the input aside, moves the input to the output path and
// rewrites it from the copy. On failure the original bytes go back to the input path.
func applyBackup(job model.Job, backupDir string, log *slog.Logger) (subtitle.Stats, error) {
	if backupDir == "" {
		backupDir = os.TempDir()
	}
	backupPath := filepath.Join(backupDir, fmt.Sprintf("subs_%d", os.Getpid()))
	if err := copyFile(job.Input, backupPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return subtitle.Stats{}, fmt.Errorf("file not found: %s", job.Input)
		}
		return subtitle.Stats{}, fmt.Errorf("failed to backup input file: %w", err)
	}
	defer os.Remove(backupPath)
	log.Debug("backed up input", "backup", backupPath)

	input, err := os.Open(backupPath)
	if err != nil {
		return subtitle.Stats{}, fmt.Errorf("failed to open backup input file to read: %w", err)
	}
	defer input.Close()

	if job.Output != job.Input {
		if err := os.Rename(job.Input, job.Output); err != nil {
			return subtitle.Stats{}, fmt.Errorf("failed to rename file from .srt to .vtt: %w", err)
		}
	}

	stats, err := rewriteInto(job, input, job.Output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err == nil {
		return stats, nil
	}

	log.Warn("rewrite failed, restoring input", "error", err)
	if rerr := copyFile(backupPath, job.Input); rerr != nil {
		return stats, errors.Join(err, fmt.Errorf("failed to restore input file: %w", rerr))
	}
	if job.Output != job.Input {
		if rerr := os.Remove(job.Output); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
			return stats, errors.Join(err, fmt.Errorf("failed to remove partial output: %w", rerr))
		}
	}
	return stats, err
}

// applyRename leaves the input untouched and renames a finished temp file over the output.
func applyRename(job model.Job, log *slog.Logger) (subtitle.Stats, error) {
	input, err := os.Open(job.Input)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return subtitle.Stats{}, fmt.Errorf("file not found: %s", job.Input)
		}
		return subtitle.Stats{}, fmt.Errorf("failed to open input file to read: %w", err)
	}
	defer input.Close()

	info, err := input.Stat()
	if err != nil {
		return subtitle.Stats{}, fmt.Errorf("stat input: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(job.Output), ".subs-*.vtt")
	if err != nil {
		return subtitle.Stats{}, fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	log.Debug("writing temporary file", "temp", tmpPath)

	stats, err := rewriteInto(job, input, tmpPath, os.O_WRONLY|os.O_TRUNC)
	if err == nil {
		err = os.Chmod(tmpPath, info.Mode().Perm())
	}
	if err == nil {
		err = os.Rename(tmpPath, job.Output)
	}
	if err != nil {
		os.Remove(tmpPath)
		return stats, err
	}
	return stats, nil
}

func rewriteInto(job model.Job, input io.Reader, path string, flag int) (subtitle.Stats, error) {
	output, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return subtitle.Stats{}, fmt.Errorf("failed to open file to write: %w", err)
	}
	stats, err := rewriterFor(job).Rewrite(input, output)
	if cerr := output.Close(); cerr != nil && err == nil {
		err = &subtitle.WriteError{Err: cerr}
	}
	return stats, err
}

// copyFile copies the content and leaves the destination's permissions alone.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Preview rewrites the job into memory and renders a markdown summary of its
// first maxCues cues. Nothing on disk changes.
func Preview(job model.Job, maxCues int) (string, subtitle.Stats, error) {
	input, err := os.Open(job.Input)
	if err != nil {
		return "", subtitle.Stats{}, fmt.Errorf("open file: %w", err)
	}
	defer input.Close()

	var out bytes.Buffer
	stats, err := rewriterFor(job).Rewrite(input, &out)
	if err != nil {
		return "", stats, err
	}

	sb := strings.Builder{}
	sb.WriteString("# Subs\n\n## " + filepath.Base(job.Input) + " → " + filepath.Base(job.Output) + "\n\n")
	sb.WriteString("| Begin shift | End shift | Cues | Dropped lines |\n")
	sb.WriteString("| --- | --- | --- | --- |\n")
	fmt.Fprintf(&sb, "| %s | %s | %d | %d |\n\n", signed(job.Offsets.Begin.Milliseconds()), signed(job.Offsets.End.Milliseconds()), stats.Cues, stats.Dropped)

	blocks := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n\n")
	shown := blocks
	if len(shown) > maxCues+1 {
		shown = shown[:maxCues+1]
	}
	sb.WriteString("```\n")
	sb.WriteString(strings.Join(shown, "\n\n"))
	sb.WriteString("\n```\n")
	if hidden := len(blocks) - len(shown); hidden > 0 {
		fmt.Fprintf(&sb, "\n…and %d more cues\n", hidden)
	}
	return sb.String(), stats, nil
}

func signed(ms int32) string {
	sign := "+"
	if ms < 0 {
		sign, ms = "-", -ms
	}
	return fmt.Sprintf("%s%d.%03ds", sign, ms/1000, ms%1000)
}
