// Part of the tinystore CLI - this file implements the 'tinystore collections' command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List the database's collections",
	Args:  cobra.NoArgs,
	RunE:  runCollections,
}

func runCollections(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	names, err := db.Collections()
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
