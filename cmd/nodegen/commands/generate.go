package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/nodegen/config"
	"github.com/teranos/nodegen/errors"
	"github.com/teranos/nodegen/gen"
	"github.com/teranos/nodegen/gen/rust"
	"github.com/teranos/nodegen/logger"
	"github.com/teranos/nodegen/schema"
)

var (
	flagSchema   string
	flagOutput   string
	flagLang     string
	flagJSONLogs bool
)

// RegisterPersistentFlags attaches the shared flags to the root command so
// every subcommand sees the same schema/output/lang settings.
func RegisterPersistentFlags(root *cobra.Command) {
	root.PersistentFlags().StringVarP(&flagSchema, "config", "c", "", "Path to the node schema document (default: config.yml)")
	root.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Output file (default: stdout)")
	root.PersistentFlags().StringVarP(&flagLang, "lang", "l", "", "Target language (default: rust)")
	root.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "Emit JSON structured logs")
}

// JSONLogs reports whether JSON log output was requested.
func JSONLogs() bool {
	return flagJSONLogs
}

// effectiveConfig merges the loaded configuration with command-line flag
// overrides. Flags win.
func effectiveConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	if flagSchema != "" {
		cfg.Schema = flagSchema
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}
	if flagLang != "" {
		cfg.Lang = flagLang
	}
	return cfg, nil
}

// generatorFor returns the generator for a target language name.
func generatorFor(lang string) (gen.Generator, error) {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "rust", "rs":
		return rust.NewGenerator(), nil
	default:
		return nil, errors.Newf("unknown target language: %s (supported: rust)", lang)
	}
}

// GenerateCmd emits the binding layer once.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the AST binding layer from the node schema",
	Long: `Generate the typed binding layer from the node schema.

The schema document declares one entry per AST node kind with its ordered
fields. nodegen validates the schema and emits a single source unit
containing the view types, the node union with tag dispatch, per-node
wrappers with typed accessors, and the visitor with default traversal.

Examples:
  nodegen generate                          # Emit to stdout
  nodegen generate -c config.yml -o src/generated.rs
  nodegen generate --lang rust`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}

	output, s, err := generateOnce(cfg)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		fmt.Print(output)
		return nil
	}

	if err := writeOutput(cfg.Output, output); err != nil {
		return err
	}

	logger.Infow("Generated bindings",
		"schema", cfg.Schema,
		"output", cfg.Output,
		"nodes", len(s.Nodes))
	return nil
}

// generateOnce loads the schema and produces the binding unit.
func generateOnce(cfg *config.Config) (string, *schema.Schema, error) {
	g, err := generatorFor(cfg.Lang)
	if err != nil {
		return "", nil, err
	}

	s, err := schema.LoadFile(cfg.Schema)
	if err != nil {
		return "", nil, err
	}

	return g.GenerateFile(s), s, nil
}

// writeOutput writes the generated unit, creating parent directories.
func writeOutput(path, output string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "failed to create output directory")
		}
	}
	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
