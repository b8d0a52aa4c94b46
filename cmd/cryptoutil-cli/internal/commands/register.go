package commands

import (
	"fmt"

	"github.com/JoonHoSon/cryptoutil/internal/pkg/config"

	"github.com/spf13/cobra"
)

// InitCommands registers all command groups with the root command.
func InitCommands(rootCmd *cobra.Command, settings *config.Settings) error {
	if err := InitHashCommands(rootCmd, settings); err != nil {
		return fmt.Errorf("failed to initialize hash commands: %w", err)
	}

	if err := InitAESCommands(rootCmd, settings); err != nil {
		return fmt.Errorf("failed to initialize AES commands: %w", err)
	}

	if err := InitRSACommands(rootCmd, settings); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	return nil
}
