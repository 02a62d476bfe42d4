package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Cobalt/internal/config"
	"github.com/MikeSquared-Agency/Cobalt/internal/scoring"
)

// options holds the persistent flags shared by every command.
type options struct {
	inputsPath  string
	sessionPath string
	weights     []string
	jsonOut     bool
	noColor     bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "cobaltctl",
		Short:         "Score governance system design factors from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.inputsPath, "inputs", "i", "", "answers file (YAML or JSON), keyed by factor then item")
	pf.StringVarP(&opts.sessionPath, "session", "s", "", "session file with inputs, weights, overrides and adjustments")
	pf.StringArrayVarP(&opts.weights, "weight", "w", nil, "factor weight as factor=value, repeatable (e.g. --weight df3=2)")
	pf.BoolVar(&opts.jsonOut, "json", false, "print JSON instead of tables")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable coloured output")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log degraded objectives to stderr")

	root.AddCommand(
		newObjectivesCmd(opts),
		newFactorsCmd(opts),
		newDefaultsCmd(opts),
		newScoreCmd(opts),
		newScopeCmd(opts),
		newFinalCmd(opts),
		newCanvasCmd(opts),
		newStatsCmd(opts),
	)
	return root
}

func (o *options) scorer(cmd *cobra.Command) *scoring.Scorer {
	level := slog.LevelError
	if o.verbose {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return scoring.NewScorer(logger, nil)
}

// session assembles the scoring state from the flags: the session file
// first, then the inputs file, then --weight pairs on top.
func (o *options) session() (scoring.Session, error) {
	var sess scoring.Session
	if o.sessionPath != "" {
		if err := readDocument(o.sessionPath, &sess); err != nil {
			return sess, err
		}
		if err := sess.Validate(); err != nil {
			return sess, fmt.Errorf("%s: %w", o.sessionPath, err)
		}
	}
	if o.inputsPath != "" {
		var in scoring.UserInputs
		if err := readDocument(o.inputsPath, &in); err != nil {
			return sess, err
		}
		sess.Inputs = in
	}
	if len(o.weights) > 0 {
		w, err := config.ParseFactorWeights(o.weights...)
		if err != nil {
			return sess, fmt.Errorf("--weight: %w", err)
		}
		sess.Weights = sess.Weights.Merge(w)
	}
	if sess.Inputs == nil {
		sess.Inputs = scoring.UserInputs{}
	}
	return sess, nil
}

// readDocument decodes a JSON file by extension and anything else as YAML.
func readDocument(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, v)
	} else {
		err = yaml.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
