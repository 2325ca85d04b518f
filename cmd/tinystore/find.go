// Part of the tinystore CLI - this file implements the 'tinystore find' command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <collection> [query-json]",
	Short: "Find records by field equality",
	Long: `Print the records matching every field of the query object. With no
query (or an empty object) all records are printed in insertion order.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	query := map[string]any{}
	if len(args) == 2 {
		q, err := parseObject(args[1])
		if err != nil {
			return fmt.Errorf("invalid query: %w", err)
		}
		query = q
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

	records, err := collection.Find(query)
	if err != nil {
		return fmt.Errorf("find failed: %w", err)
	}
	return printRecords(records)
}
