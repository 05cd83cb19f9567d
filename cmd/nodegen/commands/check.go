package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/nodegen/errors"
	"github.com/teranos/nodegen/gen"
	"github.com/teranos/nodegen/schema"
)

// CheckCmd verifies the generated bindings are up to date.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if generated bindings are up to date",
	Long: `Check if the generated bindings match the current node schema.

This command regenerates the bindings in memory and compares them with the
existing output file. Generation is deterministic, so any difference means
the file is stale.

Exit codes:
  0 - Bindings are up to date
  1 - Bindings are out of date or the check failed

Examples:
  nodegen check -o src/generated.rs`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		return errors.New("check requires an output file (use --output or set output in nodegen.toml)")
	}

	g, err := generatorFor(cfg.Lang)
	if err != nil {
		return err
	}

	s, err := schema.LoadFile(cfg.Schema)
	if err != nil {
		return err
	}

	result, err := gen.CheckFile(g, s, cfg.Output)
	if err != nil {
		return errors.Wrap(err, "failed to check bindings")
	}

	if result.UpToDate {
		fmt.Println("✓ Bindings are up to date")
		return nil
	}

	fmt.Printf("✗ Bindings are out of date: %s (%s)\n", result.Path, result.Reason)
	return errors.New("bindings are out of date - run 'nodegen generate' to update")
}
