// Part of the tinystore CLI - this file implements the 'tinystore update' command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <collection> <query-json> <patch-json>",
	Short: "Patch every record matching a query",
	Long: `Merge the patch object into every record matching the query: patch keys
overwrite existing fields, unnamed fields are untouched, new keys are added.
The full post-update record set is printed.`,
	Args: cobra.ExactArgs(3),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	query, err := parseObject(args[1])
	if err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}
	patch, err := parseObject(args[2])
	if err != nil {
		return fmt.Errorf("invalid patch: %w", err)
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	collection, err := db.Collection(args[0])
	if err != nil {
		return fmt.Errorf("failed to open collection: %w", err)
	}

	records, err := collection.Update(query, patch)
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	return printRecords(records)
}
