package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/store"
)

var bundleDataDir string

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Export or import the whole resume collection",
}

var bundleExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the collection to a backup file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBundleExport,
}

var bundleImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the collection from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBundleImport,
}

func init() {
	bundleCmd.PersistentFlags().StringVar(&bundleDataDir, "data-dir", ".resume-studio", "Directory for file-backed storage")
	bundleCmd.AddCommand(bundleExportCmd)
	bundleCmd.AddCommand(bundleImportCmd)
	rootCmd.AddCommand(bundleCmd)
}

func openBundleStore() (*store.Store, error) {
	kv, err := store.NewFileKV(bundleDataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}
	return store.New(kv), nil
}

func runBundleExport(_ *cobra.Command, args []string) error {
	st, err := openBundleStore()
	if err != nil {
		return err
	}

	blob, err := st.ExportBundle(context.Background())
	if err != nil {
		return fmt.Errorf("failed to export bundle: %w", err)
	}
	if err := os.WriteFile(args[0], blob, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", args[0], err)
	}

	fmt.Printf("Exported collection to %s\n", args[0])
	return nil
}

func runBundleImport(_ *cobra.Command, args []string) error {
	st, err := openBundleStore()
	if err != nil {
		return err
	}

	blob, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	if err := schemas.Validate(schemas.Bundle, blob); err != nil {
		return fmt.Errorf("bundle rejected: %w", err)
	}
	if err := st.ImportBundle(context.Background(), blob); err != nil {
		return err
	}

	fmt.Printf("Imported collection from %s\n", args[0])
	return nil
}
