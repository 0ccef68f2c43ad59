package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tintd/tint/internal/store"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the themes directory and reload on changes",
	Long: `Watch the themes directory and reload the collection whenever theme
files are created, modified, or removed. Each reload prints the current
theme list. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	printThemes := func() {
		for _, t := range themeStore.Themes() {
			marker := " "
			if sel := themeStore.Selected(); sel != nil && sel.Name == t.Name {
				marker = "*"
			}
			fmt.Printf("%s %s (%s)\n", marker, t.Name, t.Appearance)
		}
		fmt.Println()
	}

	watcher, err := store.NewDirWatcher(themeStore, logger, printThemes)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Print the initial listing before the watch goroutine exists; once
	// Start returns, the store may be reloaded at any time.
	fmt.Printf("watching %s\n\n", themeStore.Dir())
	printThemes()

	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	return nil
}
