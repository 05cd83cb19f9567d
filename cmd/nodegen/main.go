package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/nodegen/cmd/nodegen/commands"
	"github.com/teranos/nodegen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "nodegen",
	Short: "Generate typed AST bindings from a node schema",
	Long: `nodegen - schema-driven AST binding generator.

nodegen reads a declarative YAML description of an AST node hierarchy and
emits a strongly-typed accessor and traversal layer over the parser's raw
node graph: per-node wrappers, a discriminated node union with tag dispatch,
lazy list views, and a visitor with schema-derived default traversal.

Examples:
  nodegen generate                          # Emit bindings to stdout
  nodegen generate -o src/generated.rs      # Write bindings to a file
  nodegen check -o src/generated.rs         # Verify bindings are up to date
  nodegen watch -o src/generated.rs         # Regenerate on schema changes`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Initialize(commands.JSONLogs()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	commands.RegisterPersistentFlags(rootCmd)

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
