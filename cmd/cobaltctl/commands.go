package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Cobalt/internal/catalog"
	"github.com/MikeSquared-Agency/Cobalt/internal/scoring"
)

func newObjectivesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "objectives",
		Short: "List the governance and management objectives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			objs := catalog.Objectives()
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), objs)
			}
			return writeObjectivesTable(cmd.OutOrStdout(), objs)
		},
	}
}

func newFactorsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "factors",
		Short: "List the design factors and their items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			factors := catalog.Factors()
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), factors)
			}
			return writeFactorsTable(cmd.OutOrStdout(), factors)
		},
	}
}

func newDefaultsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the neutral answers for every factor, ready to edit as an inputs file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := scoring.DefaultInputs()
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), in)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(in); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func lookupFactorArg(id string) (catalog.Factor, error) {
	f, ok := catalog.LookupFactor(id)
	if !ok {
		return f, fmt.Errorf("unknown factor %q (expected one of %v)", id, catalog.FactorIDs())
	}
	return f, nil
}

func newScoreCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "score <factor>",
		Short: "Score one design factor against every objective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookupFactorArg(args[0])
			if err != nil {
				return err
			}
			sess, err := opts.session()
			if err != nil {
				return err
			}
			results := opts.scorer(cmd).ScoreFactor(sess.Inputs, f.ID)
			total := scoring.FactorPercentageTotal(sess.Inputs, f.ID)
			if opts.jsonOut {
				out := map[string]interface{}{
					"factor_id":  f.ID,
					"results":    results,
					"statistics": scoring.FactorStatistics(sess.Inputs, f.ID),
				}
				if total != nil {
					out["percentage_total"] = *total
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}
			return writeFactorTable(cmd.OutOrStdout(), f, results, total)
		},
	}
}

func newScopeCmd(opts *options) *cobra.Command {
	var refined bool
	cmd := &cobra.Command{
		Use:   "scope",
		Short: "Compute the initial scope (df1-df4) or, with --refined, the refined scope (df1-df10)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.session()
			if err != nil {
				return err
			}
			stage := scoring.StageInitial
			if refined {
				stage = scoring.StageRefined
			}
			results, err := opts.scorer(cmd).Scope(stage, sess.Inputs, scoring.DefaultFactorWeights().Merge(sess.Weights))
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			return writeScopeTable(cmd.OutOrStdout(), stage, results)
		},
	}
	cmd.Flags().BoolVar(&refined, "refined", false, "aggregate all ten factors")
	return cmd
}

func newFinalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "final",
		Short: "Apply the session's manual overrides to the refined scope",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.session()
			if err != nil {
				return err
			}
			results := opts.scorer(cmd).FinalDesign(sess.Inputs, scoring.DefaultFactorWeights().Merge(sess.Weights), sess.Overrides)
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			return writeFinalTable(cmd.OutOrStdout(), results)
		},
	}
}

func newCanvasCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "canvas",
		Short: "Build the consolidated design canvas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.session()
			if err != nil {
				return err
			}
			canvas := opts.scorer(cmd).BuildCanvas(sess.Inputs, scoring.DefaultFactorWeights().Merge(sess.Weights), sess.Adjustments)
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), canvas)
			}
			return writeCanvasTable(cmd.OutOrStdout(), canvas)
		},
	}
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <factor>",
		Short: "Summary statistics of a rating factor's answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookupFactorArg(args[0])
			if err != nil {
				return err
			}
			sess, err := opts.session()
			if err != nil {
				return err
			}
			sum := scoring.FactorStatistics(sess.Inputs, f.ID)
			if sum == nil {
				return fmt.Errorf("factor %s is not a rating factor", f.ID)
			}
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), sum)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\naverage:        %.2f\nstd deviation:  %.2f\nbaseline ratio: %.2f\n",
				f.ID, f.Name, sum.Average, sum.StdDev, sum.BaselineRatio)
			return err
		},
	}
}
