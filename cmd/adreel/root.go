package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ivlev/adreel/internal/adspec"
	"github.com/ivlev/adreel/internal/assets"
	"github.com/ivlev/adreel/internal/config"
	"github.com/ivlev/adreel/internal/engine"
	"github.com/ivlev/adreel/internal/logger"
	"github.com/ivlev/adreel/internal/system"
)

const specDir = "input/specs"

var (
	cfg *config.Config
	log *zap.Logger

	// status gets the [*] progress lines; commands with machine-readable
	// stdout point it at stderr
	status io.Writer = os.Stdout

	flagEnvFile string
	flags       = config.Default()
)

var rootCmd = &cobra.Command{
	Use:           "adreel",
	Short:         "adreel раскладывает рекламный ролик по кадрам",
	Long:          "adreel читает описание ролика (YAML/JSON), подбирает ассеты и считает таймлайн, переходы, анимации и громкость музыки для каждого кадра.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		status = cmd.OutOrStdout()

		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err = logger.New(logger.Config{
			Level:      cfg.LogLevel,
			OutputPath: cfg.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		})
		if err != nil {
			return fmt.Errorf("ошибка инициализации логгера: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagEnvFile, "env", ".env", "Файл с переменными ADREEL_*")
	pf.StringVar(&flags.SpecPath, "spec", "", "Путь к описанию ролика (по умолчанию: самый свежий файл в "+specDir+"/)")
	pf.StringVar(&flags.LibraryPath, "library", flags.LibraryPath, "Библиотека ассетов (YAML/JSON)")
	pf.StringVar(&flags.Preset, "preset", flags.Preset, "Пресет формата: 9:16, 1:1, 16:9")
	pf.IntVar(&flags.Width, "width", flags.Width, "Ширина")
	pf.IntVar(&flags.Height, "height", flags.Height, "Высота")
	pf.IntVar(&flags.FPS, "fps", flags.FPS, "FPS")
	pf.IntVar(&flags.Workers, "workers", 0, "Потоки (0 - по числу ядер)")
	pf.Float64Var(&flags.TransitionSeconds, "transition", flags.TransitionSeconds, "Длительность перехода (сек)")
	pf.StringVar(&flags.TransitionID, "transition-id", "", "Переход из библиотеки ассетов (перекрывает -transition)")
	pf.StringVar(&flags.Locale, "locale", flags.Locale, "Язык форматирования чисел (en, de, ru...)")
	pf.Int64Var(&flags.Seed, "seed", 0, "Зерно выбора ассетов (0 - случайное)")
	pf.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Уровень логов: debug, info, warn, error")
	pf.StringVar(&flags.LogFile, "log-file", "", "Файл логов с ротацией")
	pf.BoolVar(&flags.ShowStats, "stats", false, "Показать отчет о производительности")

	rootCmd.Version = Version
	rootCmd.AddCommand(validateCmd, planCmd, frameCmd, sampleCmd, audioCmd)
}

// loadConfig: defaults, then env, then explicitly set flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c := config.Default()
	c.BuildVersion = Version
	if err := config.FromEnv(c, flagEnvFile); err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("preset") {
		if err := c.ApplyPreset(flags.Preset); err != nil {
			return nil, err
		}
	}
	if f.Changed("spec") {
		c.SpecPath = flags.SpecPath
	}
	if f.Changed("library") {
		c.LibraryPath = flags.LibraryPath
	}
	if f.Changed("width") {
		c.Width = flags.Width
	}
	if f.Changed("height") {
		c.Height = flags.Height
	}
	if f.Changed("fps") {
		c.FPS = flags.FPS
	}
	if f.Changed("workers") {
		c.Workers = flags.Workers
	}
	if f.Changed("transition") {
		c.TransitionSeconds = flags.TransitionSeconds
	}
	if f.Changed("transition-id") {
		c.TransitionID = flags.TransitionID
	}
	if f.Changed("locale") {
		c.Locale = flags.Locale
	}
	if f.Changed("seed") {
		c.Seed = flags.Seed
	}
	if f.Changed("log-level") {
		c.LogLevel = flags.LogLevel
	}
	if f.Changed("log-file") {
		c.LogFile = flags.LogFile
	}
	if f.Changed("stats") {
		c.ShowStats = flags.ShowStats
	}

	return c, c.Validate()
}

// loadSpec resolves the spec path (argument, config, latest in specDir) and decodes it
func loadSpec(args []string) (adspec.AdSpec, error) {
	path := cfg.SpecPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		latest, err := system.FindLatestSpec(specDir)
		if err != nil {
			return adspec.AdSpec{}, fmt.Errorf("%v. Положите описание ролика в %s/", err, specDir)
		}
		path = latest
		fmt.Fprintf(status, "[*] Выбран файл: %s\n", path)
	}

	spec, err := adspec.Load(path)
	if err != nil {
		return adspec.AdSpec{}, fmt.Errorf("ошибка чтения описания %s: %w", path, err)
	}
	log.Debug("spec loaded", zap.String("path", path), zap.Int("scenes", len(spec.Scenes)))
	return spec, nil
}

// loadSelector opens the asset library. A missing library is not fatal:
// the project is then built without picking assets.
func loadSelector() (*assets.Selector, error) {
	lib, err := assets.LoadLibrary(cfg.LibraryPath)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(status, "[!] Библиотека ассетов не найдена (%s), ассеты не подбираются\n", cfg.LibraryPath)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения библиотеки ассетов: %w", err)
	}

	var src rand.Source
	if cfg.Seed != 0 {
		src = rand.NewSource(cfg.Seed)
	}
	return assets.NewSelector(lib, src), nil
}

func loadProject(args []string) (*engine.Project, error) {
	spec, err := loadSpec(args)
	if err != nil {
		return nil, err
	}
	sel, err := loadSelector()
	if err != nil {
		return nil, err
	}

	project, err := engine.NewProject(cfg, spec, sel, log)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(status, "--- [PROJECT: ADREEL] ---")
	fmt.Fprintf(status, "[*] Сцен: %d | Кадров: %d | Переход: %d кадр.\n",
		len(project.Plan.Scenes), project.TotalFrames(), project.Plan.Transition)
	fmt.Fprintf(status, "[*] Разрешение: %dx%d @ %d FPS | Тон: %s\n", cfg.Width, cfg.Height, cfg.FPS, project.Spec.Tone)
	fmt.Fprintln(status, "-------------------------")
	return project, nil
}

func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0755)
}
