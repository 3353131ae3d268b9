package cli

import (
	"github.com/spf13/cobra"

	"github.com/Skotchmaster/astrion_panel/internal/errx"
	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/transport"
	"github.com/Skotchmaster/astrion_panel/internal/util"
)

const nothingToUpdate = "Nothing to update. Pass at least one field flag."

func productsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{Use: "products", Aliases: []string{"product"}, Short: "Browse and edit products"}
	cmd.AddCommand(
		productsListCmd(app),
		productsGetCmd(app),
		productsCreateCmd(app),
		productsUpdateCmd(app),
		productsDeleteCmd(app),
		productsFavoriteCmd(app),
	)
	return cmd
}

func productsListCmd(app *App) *cobra.Command {
	var (
		search    string
		category  string
		page      int
		favorites bool
	)
	cmd := &cobra.Command{
		Use:         "list",
		Short:       "List products",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationList: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := app.dash.Products.List(cmd.Context(), transport.ProductFilters{
				Search:   search,
				Category: models.Category(category),
			})
			if err != nil {
				return err
			}
			if favorites {
				items = app.dash.Favorites.Only(items)
			}
			pageItems, meta := util.Paginate(items, page, util.ProductPageSize)
			renderProducts(cmd.OutOrStdout(), pageItems, meta, app.dash.Favorites.IsFavorite)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "match name or description")
	cmd.Flags().StringVar(&category, "category", "", "electronics, fashion, home, sports, books or all")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().BoolVar(&favorites, "favorites", false, "only show favorites")
	return cmd
}

func productsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prod, err := app.dash.Products.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderProduct(cmd.OutOrStdout(), prod, app.dash.Favorites.IsFavorite(prod.ID))
			return nil
		},
	}
}

func productsCreateCmd(app *App) *cobra.Command {
	var req transport.CreateProductRequest
	var category string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Category = models.Category(category)
			prod, err := app.dash.Products.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "Created product %s.\n", prod.ID)
			renderProduct(cmd.OutOrStdout(), prod, false)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Name, "name", "", "product name")
	f.StringVar(&req.Description, "description", "", "product description")
	f.Int64Var(&req.Price, "price", 0, "price in cents")
	f.StringVar(&category, "category", "", "electronics, fashion, home, sports or books")
	f.StringVar(&req.ImageURL, "image-url", "", "image URL")
	f.IntVar(&req.InventoryCount, "inventory", 0, "units in stock")
	return cmd
}

func productsUpdateCmd(app *App) *cobra.Command {
	var (
		name, description, category, imageURL string
		price                                  int64
		inventory                              int
	)
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change the given fields of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			var patch transport.PatchProductRequest
			if f.Changed("name") {
				patch.Name = &name
			}
			if f.Changed("description") {
				patch.Description = &description
			}
			if f.Changed("price") {
				patch.Price = &price
			}
			if f.Changed("category") {
				c := models.Category(category)
				patch.Category = &c
			}
			if f.Changed("image-url") {
				patch.ImageURL = &imageURL
			}
			if f.Changed("inventory") {
				patch.InventoryCount = &inventory
			}
			if patch.Empty() {
				return errx.Validation(nothingToUpdate)
			}

			prod, err := app.dash.Products.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "Updated product %s.\n", prod.ID)
			renderProduct(cmd.OutOrStdout(), prod, app.dash.Favorites.IsFavorite(prod.ID))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&name, "name", "", "product name")
	f.StringVar(&description, "description", "", "product description")
	f.Int64Var(&price, "price", 0, "price in cents")
	f.StringVar(&category, "category", "", "electronics, fashion, home, sports or books")
	f.StringVar(&imageURL, "image-url", "", "image URL")
	f.IntVar(&inventory, "inventory", 0, "units in stock")
	return cmd
}

func productsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.dash.Products.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "Deleted product %s.\n", args[0])
			return nil
		},
	}
}

func productsFavoriteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite ID",
		Short: "Add or remove a product from favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.dash.Favorites.Toggle(args[0]) {
				printf(cmd.OutOrStdout(), "%s added to favorites.\n", args[0])
			} else {
				printf(cmd.OutOrStdout(), "%s removed from favorites.\n", args[0])
			}
			return nil
		},
	}
}
