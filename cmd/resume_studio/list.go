package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/store"
)

var listDataDir string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored resumes",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listDataDir, "data-dir", ".resume-studio", "Directory for file-backed storage")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	kv, err := store.NewFileKV(listDataDir)
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}
	st := store.New(kv)

	resumes := st.GetAll(ctx)
	if len(resumes) == 0 {
		fmt.Println("No resumes stored.")
		return nil
	}

	activeID := st.GetActiveID(ctx)
	for _, r := range resumes {
		marker := " "
		if r.ID == activeID {
			marker = "*"
		}
		updated := time.UnixMilli(r.UpdatedAt).Format("2006-01-02 15:04")
		fmt.Printf("%s %-40s %-24s %s\n", marker, r.ID, r.Name, updated)
	}
	return nil
}
