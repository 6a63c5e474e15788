package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thand-io/console/internal/client"
	"github.com/thand-io/console/internal/models"
	"github.com/thand-io/console/internal/roles"
)

var templatesCmd = &cobra.Command{
	Use:   "templates [query]",
	Short: "List or search the adaptive authentication templates",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var templateClient roles.TemplateClient
		if cfg.HasBackend() {
			templateClient = client.New(cfg.GetBackend())
		}

		index := roles.NewTemplateIndex()
		defer index.Close()

		if err := index.Load(cmd.Context(), templateClient, cfg.Templates.Path); err != nil {
			return err
		}

		var templates []models.AdaptiveAuthTemplate
		if len(args) == 0 {
			templates = index.Catalog().List()
		} else {
			results, err := index.Search(cmd.Context(), &models.SearchRequest{Query: args[0]})
			if err != nil {
				return err
			}
			for _, result := range results {
				templates = append(templates, result.Result)
			}
		}

		if len(templates) == 0 {
			fmt.Println(mutedStyle.Render("No templates found"))
			return nil
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("%d templates", len(templates))))
		for _, template := range templates {
			fmt.Printf("%s %s\n", headerStyle.Render(template.Name), template.Title)
			if len(template.Summary) > 0 {
				fmt.Println("  " + mutedStyle.Render(template.Summary))
			}
			if len(template.PreRequisites) > 0 {
				fmt.Println("  " + infoStyle.Render("Requires: "+strings.Join(template.PreRequisites, ", ")))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
