package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ivlev/adreel/internal/audio"
)

const audioDir = "output/audio"

var audioOutput string

var audioCmd = &cobra.Command{
	Use:   "audio [spec]",
	Short: "Сохранить музыку ролика с фейдами в WAV",
	Long:  "Музыка берется из библиотеки ассетов (только WAV). Если трек не читается, вместо него звучит тон, чтобы можно было послушать огибающую громкости.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := loadProject(args)
		if err != nil {
			return err
		}
		plan := project.Plan
		if plan.Audio == nil {
			return errors.New("в ролике нет музыки")
		}

		outputPath := audioOutput
		if outputPath == "" {
			outputPath = filepath.Join(audioDir, fmt.Sprintf("audio_%s.wav", time.Now().Format("20060102_150405")))
		}
		if err := ensureDir(filepath.Dir(outputPath)); err != nil {
			return err
		}

		src, closeTrack, err := openTrack(plan.Audio.Music)
		if err != nil {
			return err
		}
		defer closeTrack()

		if err := audio.WriteWAV(outputPath, src, audio.PreviewRate, plan.FPS, plan.Audio.Envelope); err != nil {
			return fmt.Errorf("ошибка записи WAV: %w", err)
		}

		log.Info("audio exported",
			zap.String("path", outputPath),
			zap.Int("frames", plan.Audio.Envelope.Total),
		)
		fmt.Fprintf(status, "[+++] Успех! Звук сохранен: %s\n", outputPath)
		return nil
	},
}

func init() {
	audioCmd.Flags().StringVarP(&audioOutput, "output", "o", "", "Путь к WAV (если пусто, генерируется в "+audioDir+"/)")
}

// openTrack resolves music against the library directory. Anything that is
// not a readable WAV falls back to a sine tone.
func openTrack(music string) (beep.Streamer, func() error, error) {
	path := music
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(cfg.LibraryPath), music)
	}

	if strings.EqualFold(filepath.Ext(path), ".wav") {
		s, closer, err := audio.OpenWAV(path, audio.PreviewRate)
		if err == nil {
			return s, closer, nil
		}
		log.Warn("track not readable", zap.String("path", path), zap.Error(err))
	}

	fmt.Fprintf(status, "[!] %s не WAV или не читается, используется тон %.0f Гц\n", music, audio.ToneHz)
	tone, err := audio.Tone(audio.PreviewRate, audio.ToneHz)
	if err != nil {
		return nil, nil, err
	}
	return tone, func() error { return nil }, nil
}
