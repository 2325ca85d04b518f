// Part of the tinystore CLI - this file implements the 'tinystore delete' command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <collection> <query-json>",
	Short: "Delete every record matching a query",
	Long:  `Remove the records matching the query and print the removed records.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	query, err := parseObject(args[1])
	if err != nil {
		return fmt.Errorf("invalid query: %w", err)
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

	removed, err := collection.Delete(query)
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	return printRecords(removed)
}
