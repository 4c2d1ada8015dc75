package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-builder/internal/model"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available layout templates",
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	def := model.DefaultSettings().Template
	for _, v := range model.TemplateVariants() {
		if v == def {
			fmt.Printf("%s (default)\n", v)
			continue
		}
		fmt.Println(v)
	}
	return nil
}
