package cli

import (
	"github.com/spf13/cobra"

	"github.com/Skotchmaster/astrion_panel/internal/errx"
)

// annotationList marks commands that load a list, so the shell can offer a retry.
const annotationList = "panelctl/list"

func NewRootCmd(app *App) *cobra.Command {
	root := newTree(app)
	root.AddCommand(shellCmd(app))
	return root
}

// newTree builds every command except the shell. The shell builds a fresh tree per
// line so flag values never leak from one line into the next.
func newTree(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "panelctl",
		Short:         "Manage products and users of the Astrion panel",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return app.connect()
		},
	}
	root.PersistentFlags().StringVar(&app.url, "url", app.url, "panel API base URL")
	root.PersistentFlags().BoolVar(&app.local, "local", app.local, "use an in-process mock service instead of the API")

	root.AddCommand(
		productsCmd(app),
		usersCmd(app),
		optionsCmd(app),
		cacheCmd(app),
	)
	return root
}

func optionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Show categories, roles and statuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := app.Options(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			renderOptions(out, "Categories", opts.Categories)
			renderOptions(out, "Roles", opts.Roles)
			renderOptions(out, "Statuses", opts.Statuses)
			return nil
		},
	}
}

func cacheCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{Use: "cache", Short: "Inspect the query cache"}
	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show cache hits, misses and invalidations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := app.dash.Cache.Stats()
			printf(cmd.OutOrStdout(), "entries=%d hits=%d misses=%d invalidations=%d removals=%d\n",
				s.Entries, s.Hits, s.Misses, s.Invalidations, s.Removals)
			return nil
		},
	})
	return cmd
}

// ErrorMessage is what panelctl prints for a failed command.
func ErrorMessage(err error) string {
	return "error: " + errx.Message(err)
}
