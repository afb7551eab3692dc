package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/config"
	"github.com/shashiranjanraj/bistro/internal/server"
	"github.com/shashiranjanraj/bistro/pkg/billing"
)

// bistro route:list
//
// Builds the route table without opening any connections; handlers are
// registered but never invoked.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List registered API routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		r := server.NewRouter(&repositories.Repositories{}, billing.NewStripeClient())

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		for _, route := range r.Routes() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", route.Method, route.Path, route.Name)
		}
		return w.Flush()
	},
}
