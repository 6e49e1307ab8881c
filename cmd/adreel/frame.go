package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var frameCmd = &cobra.Command{
	Use:   "frame <n> [spec]",
	Short: "Вывести состояние одного кадра (YAML)",
	Args:  cobra.RangeArgs(1, 2),
	// stdout carries only the YAML document
	PreRun: func(cmd *cobra.Command, args []string) {
		status = cmd.ErrOrStderr()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("номер кадра: %w", err)
		}

		project, err := loadProject(args[1:])
		if err != nil {
			return err
		}

		state, err := project.Frame(n)
		if err != nil {
			return err
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(state)
	},
}
