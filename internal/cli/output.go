package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

const contentPreviewWidth = 60

func newTable() *uitable.Table {
	tbl := uitable.New()
	tbl.MaxColWidth = 80
	tbl.Separator = "  "
	return tbl
}

func printTable(cmd *cobra.Command, tbl *uitable.Table) {
	fmt.Fprintln(cmd.OutOrStdout(), tbl)
}

func successf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintln(cmd.OutOrStdout(), color.GreenString(format, args...))
}

func notef(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}

// confirm asks on stdin before a destructive action. Anything but an
// explicit yes declines.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// preview flattens note content to a single trimmed line for tables.
// Truncation counts runes so a multi-byte character is never split.
func preview(content string) string {
	line := strings.Join(strings.Fields(content), " ")
	runes := []rune(line)
	if len(runes) > contentPreviewWidth {
		line = string(runes[:contentPreviewWidth-1]) + "…"
	}
	return line
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
