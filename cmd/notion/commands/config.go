package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/notion-client/internal/constants"
	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// Config represents the CLI configuration file.
type Config struct {
	Token   string `json:"token,omitempty"    yaml:"token,omitempty"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Output  string `json:"output,omitempty"   yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage the Notion CLI configuration stored in $HOME/.notion/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetTokenCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration. The token is masked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			masked := *config
			masked.Token = maskToken(config.Token)

			return render(cmd, masked, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append([]string{"Token", masked.Token})
				_ = table.Append([]string{"Base URL", orNone(config.BaseURL)})
				_ = table.Append([]string{"Output", orNone(config.Output)})
				_ = table.Append([]string{"Config File", orNone(viper.ConfigFileUsed())})
			})
		},
	}
}

func newConfigSetTokenCommand() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "set-token [TOKEN]",
		Short: "Store the integration token",
		Long:  "Store the integration token in the configuration file. Without an argument the token is read from the terminal.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := readToken(cmd, args)
			if err != nil {
				return err
			}

			if verify {
				err = verifyToken(cmd.Context(), token)
				if err != nil {
					return err
				}
			}

			config := loadConfig()
			config.Token = token

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Token %s saved\n", maskToken(token))

			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "check the token against the API before saving it")

	return cmd
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration cleared")

			return nil
		},
	}
}

func readToken(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return validateToken(args[0])
	}

	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Integration token: ")

	if term.IsTerminal(int(syscall.Stdin)) {
		tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
		_, _ = fmt.Fprintln(cmd.ErrOrStderr())

		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}

		return validateToken(string(tokenBytes))
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	return validateToken(line)
}

func validateToken(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", constants.ErrEmptyToken
	}

	if !notion.ValidToken(token) {
		return "", notion.ErrInvalidCredential
	}

	return token, nil
}

// verifyToken lists a single user, which every integration is allowed to do.
func verifyToken(ctx context.Context, token string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, cancel := context.WithTimeout(ctx, constants.ShortHTTPTimeout)
	defer cancel()

	client, err := newClient(ctx, token)
	if err != nil {
		return err
	}

	_, err = client.ListUsersPage(ctx, notion.Paging{PageSize: notion.Ptr(1)})
	if err != nil {
		return fmt.Errorf("failed to verify token: %w", err)
	}

	return nil
}

// loadConfig returns the settings viper resolved from flags, environment
// and the configuration file.
func loadConfig() *Config {
	return &Config{
		Token:   viper.GetString("token"),
		BaseURL: viper.GetString("base_url"),
		Output:  viper.GetString("output"),
	}
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
