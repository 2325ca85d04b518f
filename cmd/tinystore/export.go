// Part of the tinystore CLI - this file implements the 'tinystore export' command.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tinystore/tinystore/tinystore"
	"github.com/tinystore/tinystore/types"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [collection]",
	Short: "Dump collections to stdout",
	Long: `Dump the named collection's records, or every collection when none is
given, as JSON or YAML.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json|yaml")
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if len(args) == 1 {
		records, err := loadCollection(db, args[0])
		if err != nil {
			return err
		}
		return writeExport(records)
	}

	names, err := db.Collections()
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	dump := make(map[string][]types.Record, len(names))
	for _, name := range names {
		records, err := loadCollection(db, name)
		if err != nil {
			return err
		}
		dump[name] = records
	}
	return writeExport(dump)
}

func loadCollection(db *tinystore.Database, name string) ([]types.Record, error) {
	collection, err := db.Collection(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open collection %s: %w", name, err)
	}
	records, err := collection.All()
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", name, err)
	}
	return records, nil
}

func writeExport(v any) error {
	switch exportFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer func() { _ = enc.Close() }()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown format %q: expected json or yaml", exportFormat)
	}
}
