package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/notion-client/internal/constants"
	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = constants.NotAvailable
	None         = "-"
)

// outputFormat returns the validated --output value.
func outputFormat() (string, error) {
	output := strings.ToLower(viper.GetString("output"))

	switch output {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return output, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, output)
	}
}

// render writes value in the selected output format. Table output is built
// by fill, which must set the header and append the rows.
func render(cmd *cobra.Command, value interface{}, fill func(table *tablewriter.Table)) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch format {
	case constants.FormatJSON:
		return writeJSON(out, value)
	case constants.FormatYAML:
		return writeYAML(out, value)
	default:
		return writeTable(out, fill)
	}
}

func writeJSON(w io.Writer, value interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// writeYAML goes through the JSON encoding so that the model's wire names
// and union tags are kept.
func writeYAML(w io.Writer, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	var document interface{}

	err = json.Unmarshal(data, &document)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err = encoder.Encode(document)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}

func writeTable(w io.Writer, fill func(table *tablewriter.Table)) error {
	table := tablewriter.NewWriter(w)
	fill(table)

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// truncate shortens s to the display width of table cells.
func truncate(s string) string {
	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) <= constants.StringTruncationLength {
		return s
	}

	return string(runes[:constants.StringTruncationLength-3]) + "..."
}

func orNone(s string) string {
	if s == "" {
		return None
	}

	return s
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return None
	}

	return t.UTC().Format(time.RFC3339)
}

// maskToken keeps the prefix of a token, such as "secret_" or "ntn_", and
// hides the rest.
func maskToken(token string) string {
	if token == "" {
		return None
	}

	if len(token) <= constants.SecretPrefixLength {
		return constants.MaskedSecret
	}

	return token[:constants.SecretPrefixLength] + constants.MaskedSecret
}

// pageTitle returns the title of a page, or its ID when it has none.
func pageTitle(page notion.Page) string {
	if title, ok := page.Title(); ok && title != "" {
		return title
	}

	return page.ID.Value()
}

// userType names the variant of a user for display.
func userType(user notion.User) string {
	switch user.(type) {
	case notion.Person:
		return string(notion.UserTypePerson)
	case notion.Bot:
		return string(notion.UserTypeBot)
	default:
		return NotAvailable
	}
}

func userEmail(user notion.User) string {
	if person, ok := user.(notion.Person); ok {
		return orNone(person.Person.Email)
	}

	return None
}

func propertyNames(properties notion.Properties) []string {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
