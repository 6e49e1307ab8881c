package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ivlev/adreel/internal/director"
	"github.com/ivlev/adreel/internal/renderer"
)

const planDir = "output/plans"

var (
	planShowLatest bool
	planFFmpeg     bool
)

var planCmd = &cobra.Command{
	Use:   "plan [spec]",
	Short: "Рассчитать таймлайн и сохранить план ролика (YAML)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if planShowLatest {
			return showLatestPlan()
		}

		project, err := loadProject(args)
		if err != nil {
			return err
		}

		outputPath := cfg.PlanOutput
		if outputPath == "" {
			outputPath = director.GeneratePlanPath(planDir)
		}
		if err := ensureDir(filepath.Dir(outputPath)); err != nil {
			return err
		}

		if err := director.WritePlan(project.Plan, outputPath); err != nil {
			return fmt.Errorf("ошибка записи плана: %w", err)
		}

		fmt.Printf("[+++] Успех! План сохранен: %s\n", outputPath)

		if planFFmpeg {
			printFilters(project.Plan)
		}
		return nil
	},
}

func init() {
	planCmd.Flags().StringVarP(&flags.PlanOutput, "output", "o", "", "Путь к плану (если пусто, генерируется в "+planDir+"/)")
	planCmd.Flags().BoolVar(&planShowLatest, "latest", false, "Показать последний сохраненный план")
	planCmd.Flags().BoolVar(&planFFmpeg, "ffmpeg", false, "Вывести фильтры FFmpeg для склейки клипов сцен и музыки")
	planCmd.PreRun = func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("output") {
			cfg.PlanOutput = flags.PlanOutput
		}
	}
}

func showLatestPlan() error {
	path, err := director.FindLatestPlan(planDir)
	if err != nil {
		return err
	}
	plan, err := director.ReadPlan(path)
	if err != nil {
		return fmt.Errorf("ошибка чтения плана: %w", err)
	}

	fmt.Printf("[*] План: %s (%s)\n", path, plan.ID)
	fmt.Printf("[*] %dx%d @ %d FPS | Кадров: %d\n", plan.Canvas.Width, plan.Canvas.Height, plan.FPS, plan.TotalFrames)
	for _, s := range plan.Scenes {
		fmt.Printf("    %2d %-14s %5d..%-5d вход до %d, выход с %d\n",
			s.Index, s.Kind, s.Start, s.End, s.FadeInEnd, s.FadeOutStart)
	}
	if plan.Audio != nil {
		fmt.Printf("[*] Музыка: %s (громкость %.2f)\n", plan.Audio.Music, plan.Audio.Envelope.Volume)
	}
	if planFFmpeg {
		printFilters(plan)
	}
	return nil
}

func printFilters(plan *director.Plan) {
	fmt.Printf("[*] -filter_complex \"%s\"\n", renderer.XfadeFilter(plan))
	if plan.Audio != nil {
		fmt.Printf("[*] -af \"%s\"\n", renderer.VolumeFilter(plan.Audio.Envelope, plan.FPS))
	}
}
