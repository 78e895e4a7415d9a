package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/exp/slog"

	"github.com/RobbyCBennett/Subs/internal/config"
	"github.com/RobbyCBennett/Subs/internal/model"
	"github.com/RobbyCBennett/Subs/internal/timing"
	"github.com/RobbyCBennett/Subs/internal/transform"
)

const version = "1.1.0"

type args struct {
	File     string   `arg:"positional,required" placeholder:"FILE" help:".srt or .vtt subtitle file"`
	Offsets  []string `arg:"positional" placeholder:"SEC_DIFF" help:"one difference for both begin and end times, or a begin and an end difference"`
	Strategy string   `arg:"-s,--strategy" help:"recovery on failure: backup (restore the original) or rename (only replace on success)"`
	Preview  bool     `arg:"-p,--preview" help:"show the rewritten cues and ask before writing"`
	Verbose  bool     `arg:"--verbose" help:"log every step"`
}

func (args) Version() string {
	return "subs " + version
}

func (args) Description() string {
	return "Shift subtitle cue times and convert .srt files to .vtt"
}

func (args) Epilogue() string {
	return "examples:\n  subs Alien.srt\n  subs Alien.vtt +1\n  subs Alien.srt .5 -0.25"
}

func main() {
	conf, err := config.Load("config.json", ".env")
	if err != nil {
		exitWithErr(err)
	}

	var a args
	p, err := arg.NewParser(arg.Config{Program: "subs"}, &a)
	if err != nil {
		exitWithErr(err)
	}
	switch err := p.Parse(separateOffsets(os.Args[1:])); {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	case errors.Is(err, arg.ErrVersion):
		fmt.Println(a.Version())
		os.Exit(0)
	case err != nil:
		p.WriteUsage(os.Stderr)
		exitWithErr(err)
	}

	if a.Strategy != "" {
		conf.Strategy = a.Strategy
	}
	if a.Verbose {
		conf.LogLevel = "debug"
	}
	if err := conf.Validate(); err != nil {
		exitWithErr(err)
	}
	log, err := newLogger(conf.LogLevel)
	if err != nil {
		exitWithErr(err)
	}
	slog.SetDefault(log)
	log.Debug("loaded config", "fromFile", conf.LoadedFromFile, "strategy", conf.Strategy)

	job, err := model.NewJob(a.File, a.Offsets)
	if err != nil {
		exitWithErr(err)
	}

	if a.Preview {
		apply, err := preview(job, conf.PreviewCues)
		if err != nil {
			exitWithErr(err)
		}
		if !apply {
			log.Info("skipped", "input", job.Input)
			return
		}
	}

	opts := transform.Options{
		Strategy:  conf.Strategy,
		BackupDir: conf.BackupDir,
		Logger:    log,
	}
	if _, err := transform.Apply(job, opts); err != nil {
		exitWithErr(err)
	}
}

// separateOffsets moves every seconds argument behind "--" so that negative
// differences such as -0.25 are not taken for flags.
func separateOffsets(argv []string) []string {
	var rest, offsets []string
	for i, s := range argv {
		if s == "--" {
			offsets = append(offsets, argv[i+1:]...)
			break
		}
		if _, ok := timing.ParseSeconds([]byte(s)); ok {
			offsets = append(offsets, s)
			continue
		}
		rest = append(rest, s)
	}
	if len(offsets) == 0 {
		return rest
	}
	return append(append(rest, "--"), offsets...)
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

func preview(job model.Job, cues int) (bool, error) {
	content, _, err := transform.Preview(job, cues)
	if err != nil {
		return false, err
	}
	vpModel, err := model.NewPreviewModel(content)
	if err != nil {
		return false, fmt.Errorf("new model: %w", err)
	}
	retModel, err := tea.NewProgram(vpModel, tea.WithMouseAllMotion()).Run()
	if err != nil {
		return false, fmt.Errorf("run tea program: %w", err)
	}
	switch m := retModel.(type) {
	case model.PreviewModel:
		return m.Apply, nil
	case *model.PreviewModel:
		return m.Apply, nil
	}
	return false, errors.New("retModel is not of type PreviewModel")
}

var errorPrefix = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF476F")).Bold(true)

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, errorPrefix.Render("subs:"), err)
	os.Exit(1)
}
