package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xMohnad/SManga/internal/config"
)

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the config file to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.File()

		reader := bufio.NewReader(os.Stdin)
		fmt.Printf("Reset config at %s to defaults? [y/N]: ", path)
		resp, _ := reader.ReadString('\n')
		resp = strings.TrimSpace(strings.ToLower(resp))

		if resp != "y" && resp != "yes" {
			fmt.Println("Aborted.")
			return nil
		}

		if err := os.MkdirAll(config.Root(), 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := config.SaveYAML(config.DefaultConfig(), path); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Println("Config reset at:", path)

		return nil
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
}
