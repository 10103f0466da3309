package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pcbinspect/internal/config"
	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/logger"
)

func readUpload(path string) (domain.Upload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Upload{}, fmt.Errorf("could not read %s: %w", path, err)
	}

	return domain.Upload{Name: filepath.Base(path), Data: data}, nil
}

// analyzeCommand compares a template and a defective image offline and writes
// the stage previews returned by the backend.
func analyzeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <template> <defective>",
		Short: "Compares two PCB images and writes the stage previews",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out, _ := cmd.Flags().GetString("out")

			template, err := readUpload(args[0])
			if err != nil {
				return err
			}
			defective, err := readUpload(args[1])
			if err != nil {
				return err
			}

			analysis, err := getBackend(ctx, cfg).PrepareAnalysis(ctx, template, defective)
			if err != nil {
				return fmt.Errorf("could not analyze: %w", err)
			}

			if err := os.MkdirAll(out, 0o755); err != nil {
				return fmt.Errorf("could not create output directory: %w", err)
			}
			for _, stage := range domain.Stages() {
				data, ok := analysis.Images[stage]
				if !ok {
					continue
				}
				name := filepath.Join(out, string(stage)+".jpg")
				if err := os.WriteFile(name, data, 0o600); err != nil {
					return fmt.Errorf("could not write %s: %w", name, err)
				}
			}

			fields := []zap.Field{
				zap.Bool("detected", analysis.Detected),
				zap.String("status", analysis.Status()),
				zap.String("out", out),
			}
			if analysis.Accuracy != nil {
				fields = append(fields, zap.Float64("accuracy", *analysis.Accuracy))
			}
			logger.Info(ctx, "analysis complete", fields...)

			return nil
		},
	}

	cmd.Flags().String("out", "analysis", "Directory receiving the stage images")

	return cmd
}
