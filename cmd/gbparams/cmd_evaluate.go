// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gbparams/config"
	"github.com/katalvlaran/gbparams/evaluate"
)

var (
	jobPath string
)

// evaluateCmd classifies the boundaries listed in a job file
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Classify every boundary of a job file",
	Long: `Classify the boundaries listed in a YAML job file in parallel. Each record
is written as its own YAML document as soon as its batch completes; failed
records carry an error instead of values.`,
	Example: `  gbparams evaluate --config job.yaml > records.yaml`,
	Args:    cobra.NoArgs,
	RunE:    runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&jobPath, "config", "c", "", "Job file (required)")
	_ = evaluateCmd.MarkFlagRequired("config")
}

// loadJob reads the job and builds its evaluator.
func loadJob() (*config.Job, *evaluate.Evaluator, error) {
	job, err := config.Load(jobPath)
	if err != nil {
		return nil, nil, err
	}
	fields, err := job.OutputFields()
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Preparing classifier", zap.String("job", jobPath))
	template, err := job.CharacterizeOptions()
	if err != nil {
		return nil, nil, err
	}

	return job, evaluate.New(fields, template, job.EvaluateOptions(logger)), nil
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	job, ev, err := loadJob()
	if err != nil {
		return err
	}
	reqs := job.Requests()
	if len(reqs) == 0 {
		return fmt.Errorf("%s: no boundaries to evaluate", jobPath)
	}

	ctx, cancel := runContext()
	defer cancel()

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	err = ev.Each(ctx, reqs, func(batch []evaluate.Record) error {
		for _, rec := range batch {
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("encode output: %w", err)
			}
		}

		return nil
	})
	if cerr := enc.Close(); err == nil {
		err = cerr
	}

	return err
}
