package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"beaticafe/internal/catalog"

	"github.com/spf13/cobra"
)

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu [query]",
		Short: "Print the menu filtered by a website query string",
		Example: `  beaticafe menu "category=coffee,tea&maxPrice=5&sort=price-asc"
  beaticafe menu "?search=latte"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer func() { _ = e.log.Sync() }()

			st, err := openStores(e)
			if err != nil {
				return err
			}
			products, err := st.products.ListAll(cmd.Context())
			if err != nil {
				return err
			}

			raw := ""
			if len(args) == 1 {
				raw = args[0]
			}
			return printMenu(cmd.OutOrStdout(), catalog.NewView(products, catalog.ParseQuery(raw)))
		},
	}
}

func printMenu(w io.Writer, v *catalog.View) error {
	items := v.Visible()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "# %s\n", describe(v.Query()))
	for _, f := range v.Facets() {
		mark := " "
		if f.Selected {
			mark = "x"
		}
		fmt.Fprintf(tw, "# [%s] %s (%d)\n", mark, f.Value, f.Count)
	}
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\t")
	for _, p := range items {
		star := ""
		if p.Featured {
			star = " *"
		}
		fmt.Fprintf(tw, "%s\t%s%s\t%s\t$%s\t\n", p.ID, p.Name, star, p.Category, p.Price.StringFixed(2))
	}
	fmt.Fprintf(tw, "%d items\n", len(items))
	return tw.Flush()
}

func describe(q string) string {
	if q == "" {
		return "all items, featured first"
	}
	return q
}
