// Part of the tinystore CLI - root command, configuration and shared helpers.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tinystore/tinystore/tinystore"
	"github.com/tinystore/tinystore/types"
)

var (
	dbName   string
	rootPath string
	logLevel string

	cfg = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "tinystore",
	Short: "Tinystore CLI",
	Long: `Tinystore is a minimal embedded record store: collections of schema-less
records persisted as JSON array files, one file per collection.

Records, queries and patches are given as JSON objects on the command line.

Examples:
  # Insert a record (an id is generated when omitted)
  tinystore --name appdb insert users '{"name": "John", "age": 28}'

  # Find by field equality
  tinystore --name appdb find users '{"age": 28}'

  # Patch every matching record
  tinystore --name appdb update users '{"name": "John"}' '{"age": 29}'`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cfg.GetString("log-level"))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbName, "name", "n", "db", "database name (directory under the root)")
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "root directory (default: working directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug|info|warn|error")

	// Flags win over environment (TINYSTORE_NAME, TINYSTORE_ROOT, ...) which
	// wins over an optional tinystore.yaml config file.
	_ = cfg.BindPFlag("name", rootCmd.PersistentFlags().Lookup("name"))
	_ = cfg.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	_ = cfg.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	cfg.SetConfigName("tinystore")
	cfg.SetConfigType("yaml")
	cfg.AddConfigPath(".")
	cfg.AddConfigPath("$HOME/.tinystore")
	cfg.SetEnvPrefix("TINYSTORE")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
	_ = cfg.ReadInConfig()

	rootCmd.AddCommand(insertCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(collectionsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(watchCmd)
}

// openDatabase opens the configured database.
func openDatabase() (*tinystore.Database, error) {
	var opts []tinystore.Option
	if root := cfg.GetString("root"); root != "" {
		opts = append(opts, tinystore.WithRoot(root))
	}
	db, err := tinystore.Open(cfg.GetString("name"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// parseObject parses a JSON object argument.
func parseObject(arg string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(arg), &obj); err != nil {
		return nil, fmt.Errorf("not a JSON object: %w", err)
	}
	return obj, nil
}

// printRecords writes records to stdout as indented JSON.
func printRecords(records []types.Record) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// printRecord writes a single record to stdout as indented JSON.
func printRecord(record types.Record) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(record)
}
