package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/adreel/internal/engine"
	"github.com/ivlev/adreel/internal/system"
)

var (
	sampleEvery  int
	sampleOutput string
)

var sampleCmd = &cobra.Command{
	Use:   "sample [spec]",
	Short: "Рассчитать кадры параллельно и сохранить их состояния",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		project, err := loadProject(args)
		if err != nil {
			return err
		}

		frames := project.Frames(sampleEvery)
		start := time.Now()
		states, err := project.Sample(ctx, frames)
		if err != nil {
			return fmt.Errorf("ошибка расчета кадров: %w", err)
		}
		took := time.Since(start)
		fmt.Printf("[>] Готово кадров: %d/%d\n", len(states), project.TotalFrames())

		if sampleOutput != "" {
			if err := writeStates(sampleOutput, states); err != nil {
				return err
			}
			fmt.Printf("[+++] Успех! Кадры сохранены: %s\n", sampleOutput)
		}

		if cfg.ShowStats {
			printReport(project, len(states), took)
		}
		return nil
	},
}

func init() {
	sampleCmd.Flags().IntVar(&sampleEvery, "every", 1, "Шаг по кадрам")
	sampleCmd.Flags().StringVarP(&sampleOutput, "output", "o", "", "Сохранить состояния кадров в YAML")
}

func writeStates(path string, states []engine.FrameState) error {
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(states); err != nil {
		return err
	}
	return enc.Close()
}

func printReport(project *engine.Project, count int, took time.Duration) {
	rate := 0.0
	if took > 0 {
		rate = float64(count) / took.Seconds()
	}
	report := fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Plan: %s\n"+
			"Workers: %d\n"+
			"Frames: %d\n"+
			"Total Time: %.3fs\n"+
			"Frames/s: %.1f\n"+
			"----------------------------\n",
		cfg.BuildVersion, project.Plan.ID, system.WorkerCount(cfg.Workers), count, took.Seconds(), rate,
	)
	fmt.Print(report)

	log.Info("sample finished",
		zap.String("build", cfg.BuildVersion),
		zap.Int("frames", count),
		zap.Duration("took", took),
	)
}
