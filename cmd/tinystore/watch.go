// Part of the tinystore CLI - this file implements the 'tinystore watch' command.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Report changes to the database's collection files",
	Long: `Watch the database directory and print a line for every change to a
collection file, including changes made by other processes. Runs until
interrupted.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(db.Dir()); err != nil {
		return fmt.Errorf("failed to watch %s: %w", db.Dir(), err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	fmt.Printf("watching %s\n", db.Dir())
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Atomic stores surface as a rename onto the collection file;
			// temp and lock files are bookkeeping, not data changes.
			name := filepath.Base(event.Name)
			if !strings.HasSuffix(name, ".json") {
				continue
			}
			fmt.Printf("%s %s\n", event.Op, strings.TrimSuffix(name, ".json"))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case <-stop:
			return nil
		}
	}
}
