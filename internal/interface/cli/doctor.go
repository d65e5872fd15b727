package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"payflow/internal/adapter/gateway/wallet"
	"payflow/internal/app/logging"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check environment & configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				fmt.Printf("ERROR: %v\n", err)
				fmt.Println("set PAYFLOW_API_URL and PAYFLOW_API_KEY, or provide payflow.yaml")
				return err
			}

			fmt.Println("Config source:", cfg.ConfigSource())
			if cfg.SettingPath() != "" {
				fmt.Println("Config file:  ", cfg.SettingPath())
			}
			fmt.Println("API URL:      ", cfg.APIURL())
			fmt.Println("API key:      ", maskKey(cfg.APIKey()))
			fmt.Println("Wallet agent: ", cfg.WalletAgent())
			fmt.Println("Log level:    ", cfg.LogLevel())
			if cfg.JournalPath() != "" {
				fmt.Println("Journal path: ", cfg.JournalPath())
			}

			failed := false
			if _, err := wallet.NewAgent(cfg.WalletAgent()); err != nil {
				fmt.Printf("ERROR: %v\n", err)
				failed = true
			} else {
				fmt.Printf("OK: wallet agent %q available\n", cfg.WalletAgent())
			}
			if _, err := logging.New(cfg.LogLevel()); err != nil {
				fmt.Printf("ERROR: %v\n", err)
				failed = true
			} else {
				fmt.Printf("OK: log level %q valid\n", cfg.LogLevel())
			}

			if failed {
				return fmt.Errorf("doctor found configuration problems")
			}
			fmt.Println("OK: configuration is usable")
			return nil
		},
	}
}

// maskKey hides all but a short prefix of the API key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}
