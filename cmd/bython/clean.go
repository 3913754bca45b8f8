package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Willie169/bython/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the token disk cache",
	Long:  "Remove the disk cache of tokenized files so the next check starts cold.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(*cobra.Command, []string) error {
	cache, err := driver.OpenDiskCache("bython")
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to remove cache: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, "cache removed")
	return nil
}
