package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/projection"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/style"
	"github.com/jonathan/resume-studio/internal/types"
)

var (
	exportDataDir string
	exportID      string
	exportFormat  string
	exportOut     string
	exportVerbose bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored resume to a file",
	Long: `Render one stored resume to docx, pdf, html or txt without starting
the server. Exports the active resume unless --id is given.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDataDir, "data-dir", ".resume-studio", "Directory for file-backed storage")
	exportCmd.Flags().StringVar(&exportID, "id", "", "Resume id (defaults to the active resume)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Output format: docx, pdf, html or txt")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output path (defaults to a name derived from the resume)")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	kv, err := store.NewFileKV(exportDataDir)
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}
	st := store.New(kv)

	record, err := loadExportRecord(ctx, st)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if exportVerbose {
		printer.PrintStoredResume(&record)
	}

	resolved := style.Resolve(record.TemplateStyle, style.ContextExport, false)
	if exportVerbose {
		printer.PrintResolvedStyle(&resolved)
	}
	projected := projection.Project(&record.ResumeData, record.SectionOrder, record.TemplateStyle.Layout)

	format := strings.ToLower(exportFormat)
	var content []byte
	switch format {
	case "docx":
		content, err = rendering.RenderDOCX(&record.ResumeData, resolved, projected)
	case "pdf":
		content, err = rendering.RenderPDF(ctx, &record.ResumeData, resolved, projected)
	case "html":
		var html string
		html, err = rendering.RenderPrintHTML(&record.ResumeData, resolved, projected)
		content = []byte(html)
	case "txt":
		content = []byte(rendering.PlainText(&record.ResumeData, record.SectionOrder))
	default:
		return fmt.Errorf("unknown format %q (want docx, pdf, html or txt)", exportFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", format, err)
	}

	out := exportOut
	if out == "" {
		out = rendering.ExportFileName(record.ResumeData.PersonalInfo.Name, format)
	}
	if err := os.WriteFile(out, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Printf("Exported %s to %s\n", record.Name, out)
	return nil
}

func loadExportRecord(ctx context.Context, st *store.Store) (types.StoredResume, error) {
	if exportID != "" {
		return st.GetByID(ctx, exportID)
	}
	return st.EnsureAtLeastOne(ctx)
}
