package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ivlev/adreel/internal/adspec"
)

var validateEnriched string

var validateCmd = &cobra.Command{
	Use:   "validate [spec]",
	Short: "Проверить описание ролика",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := loadSpec(args)
		if err != nil {
			return err
		}

		issues := adspec.Validate(spec)
		for _, issue := range issues {
			fmt.Printf("[-] %s\n", issue)
		}
		if err := issues.Err(); err != nil {
			return fmt.Errorf("найдено ошибок: %d", len(issues))
		}

		fmt.Printf("[+] Описание корректно: %d сцен, %.1fs\n", len(spec.Scenes), totalSeconds(spec))

		if validateEnriched != "" {
			return writeEnriched(spec, validateEnriched)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateEnriched, "enriched", "", "Сохранить описание с подобранными ассетами и значениями по умолчанию")
}

func writeEnriched(spec adspec.AdSpec, path string) error {
	sel, err := loadSelector()
	if err != nil {
		return err
	}
	var picker adspec.Picker
	if sel != nil {
		picker = sel
	}

	enriched, err := adspec.Enrich(spec, picker)
	if err != nil {
		return fmt.Errorf("ошибка подбора ассетов: %w", err)
	}
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := adspec.Write(enriched, path); err != nil {
		return fmt.Errorf("ошибка записи описания: %w", err)
	}

	fmt.Fprintf(status, "[+++] Успех! Описание сохранено: %s\n", path)
	return nil
}

func totalSeconds(spec adspec.AdSpec) float64 {
	var ms float64
	for _, d := range spec.DurationsMs() {
		ms += d
	}
	return ms / 1000
}
