package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-builder/internal/model"
	"github.com/rezonia/invoice-builder/internal/render"
)

var (
	previewTemplate string
	previewOut      string
)

var previewCmd = &cobra.Command{
	Use:   "preview [invoice.json]",
	Short: "Write the rendered HTML document",
	Long: `Render an invoice to HTML without capturing or exporting it.

Useful for inspecting a layout or debugging template changes.

Examples:
  invoice-builder preview --template creative
  invoice-builder preview invoice.json -o invoice.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewTemplate, "template", "t", "", "Layout template override")
	previewCmd.Flags().StringVarP(&previewOut, "output", "o", "", "Output file (default: stdout)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	inputPath := ""
	if len(args) == 1 {
		inputPath = args[0]
	}
	in, err := loadInput(inputPath)
	if err != nil {
		return err
	}

	st := buildStore(in)
	if previewTemplate != "" {
		variant := model.TemplateVariant(previewTemplate)
		if !variant.Valid() {
			return fmt.Errorf("unknown template variant %q", previewTemplate)
		}
		st.UpdateSettings(model.SettingsPatch{Template: &variant})
	}

	html, err := render.RenderHTML(st.Data(), st.Settings())
	if err != nil {
		return err
	}

	if previewOut == "" {
		fmt.Println(html)
		return nil
	}
	if err := os.WriteFile(previewOut, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	fmt.Printf("Wrote %s\n", previewOut)
	return nil
}
