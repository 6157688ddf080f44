package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"headercheck/internal/header"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the canonical copyright header block",
	Long: `Print the canonical copyright header block to stdout.

The output is exactly the block the checker verifies and the fixer
inserts, so it can be piped into new files:

  headercheck template | cat - new_module.py > /tmp/m && mv /tmp/m new_module.py
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), header.Block)
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
