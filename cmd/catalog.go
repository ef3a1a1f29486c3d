package cmd

import (
	"fmt"

	"github.com/carloslator/EnglishVerbs/internal/vocab"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [category]",
	Short: "List the verbs in each category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cats := vocab.AllCategories()
		if len(args) == 1 {
			c, err := vocab.ParseCategory(args[0])
			if err != nil {
				return err
			}
			cats = []vocab.Category{c}
		}

		catalog := vocab.Default()
		for i, c := range cats {
			if i > 0 {
				fmt.Println()
			}
			verbs := catalog.ByCategory(c)
			fmt.Printf("%s (%s, %d verbs)\n", c.DisplayName(), c, len(verbs))
			fmt.Println(rule(40))
			for _, v := range verbs {
				fmt.Printf("%3d  %-14s  %s\n", v.ID, v.English, v.Spanish)
			}
		}
		return nil
	},
}
