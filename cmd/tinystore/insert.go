// Part of the tinystore CLI - this file implements the 'tinystore insert' command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var insertCmd = &cobra.Command{
	Use:   "insert <collection> <record-json>",
	Short: "Insert a record into a collection",
	Long: `Insert a record, given as a JSON object, into the named collection.
When the record carries no "id" field a generated identifier is assigned.
The stored record is printed.`,
	Args: cobra.ExactArgs(2),
	RunE: runInsert,
}

func runInsert(cmd *cobra.Command, args []string) error {
	record, err := parseObject(args[1])
	if err != nil {
		return fmt.Errorf("invalid record: %w", err)
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

	stored, err := collection.Insert(record)
	if err != nil {
		return fmt.Errorf("insert failed: %w", err)
	}
	return printRecord(stored)
}
