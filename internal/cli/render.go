package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/util"
)

const dateLayout = "Jan 2, 2006"

// FormatPrice renders an amount in cents as dollars.
func FormatPrice(cents int64) string {
	return "$" + decimal.New(cents, -2).StringFixed(2)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

func stock(p models.Product) string {
	if p.LowStock() {
		return fmt.Sprintf("%d (low)", p.InventoryCount)
	}
	return fmt.Sprintf("%d", p.InventoryCount)
}

func renderProducts(w io.Writer, items []models.Product, meta util.Meta, isFavorite func(string) bool) {
	if meta.Total == 0 {
		printf(w, "No products found.\n")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	printf(tw, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tFAV\n")
	for _, p := range items {
		fav := ""
		if isFavorite(p.ID) {
			fav = "*"
		}
		printf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, models.Label(models.Categories, string(p.Category)), FormatPrice(p.Price), stock(p), fav)
	}
	_ = tw.Flush()
	printf(w, "page %d/%d, %d products\n", meta.Page, meta.TotalPages, meta.Total)
}

func renderProduct(w io.Writer, p *models.Product, favorite bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	printf(tw, "ID\t%s\n", p.ID)
	printf(tw, "Name\t%s\n", p.Name)
	printf(tw, "Category\t%s\n", models.Label(models.Categories, string(p.Category)))
	printf(tw, "Price\t%s\n", FormatPrice(p.Price))
	printf(tw, "Inventory\t%s\n", stock(*p))
	printf(tw, "Image\t%s\n", p.ImageURL)
	printf(tw, "Created\t%s\n", formatDate(p.CreatedAt))
	printf(tw, "Favorite\t%t\n", favorite)
	if p.Description != "" {
		printf(tw, "Description\t%s\n", p.Description)
	}
	_ = tw.Flush()
}

func renderUsers(w io.Writer, items []models.User, meta util.Meta) {
	if meta.Total == 0 {
		printf(w, "No users found.\n")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	printf(tw, "ID\tNAME\tEMAIL\tROLE\tSTATUS\tDEPARTMENT\n")
	for _, u := range items {
		printf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.FullName, u.Email,
			models.Label(models.Roles, string(u.Role)),
			models.Label(models.Statuses, string(u.Status)),
			u.Department)
	}
	_ = tw.Flush()
	printf(w, "page %d/%d, %d users\n", meta.Page, meta.TotalPages, meta.Total)
}

func renderUser(w io.Writer, u *models.User) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	printf(tw, "ID\t%s\n", u.ID)
	printf(tw, "Name\t%s\n", u.FullName)
	printf(tw, "Email\t%s\n", u.Email)
	printf(tw, "Phone\t%s\n", u.Phone)
	printf(tw, "Role\t%s\n", models.Label(models.Roles, string(u.Role)))
	printf(tw, "Status\t%s\n", models.Label(models.Statuses, string(u.Status)))
	printf(tw, "Location\t%s\n", u.Location)
	printf(tw, "Department\t%s\n", u.Department)
	printf(tw, "Joined\t%s\n", formatDate(u.CreatedAt))
	if u.Bio != "" {
		printf(tw, "Bio\t%s\n", u.Bio)
	}
	_ = tw.Flush()
}

func renderOptions(w io.Writer, title string, options []models.Option) {
	labels := make([]string, 0, len(options))
	for _, o := range options {
		labels = append(labels, fmt.Sprintf("%s (%s)", o.Label, o.Value))
	}
	printf(w, "%s: %s\n", title, strings.Join(labels, ", "))
}
