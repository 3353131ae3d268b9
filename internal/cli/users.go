package cli

import (
	"github.com/spf13/cobra"

	"github.com/Skotchmaster/astrion_panel/internal/errx"
	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/transport"
	"github.com/Skotchmaster/astrion_panel/internal/util"
)

func usersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{Use: "users", Aliases: []string{"user"}, Short: "Browse and edit users"}
	cmd.AddCommand(
		usersListCmd(app),
		usersGetCmd(app),
		usersCreateCmd(app),
		usersUpdateCmd(app),
		usersDeleteCmd(app),
	)
	return cmd
}

func usersListCmd(app *App) *cobra.Command {
	var (
		search string
		page   int
	)
	cmd := &cobra.Command{
		Use:         "list",
		Short:       "List users",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationList: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := app.dash.Users.List(cmd.Context(), transport.UserFilters{Search: search})
			if err != nil {
				return err
			}
			pageItems, meta := util.Paginate(items, page, util.UserPageSize)
			renderUsers(cmd.OutOrStdout(), pageItems, meta)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "match name, email or department")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func usersGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.dash.Users.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderUser(cmd.OutOrStdout(), user)
			return nil
		},
	}
}

type userFlags struct {
	fullName, email, phone, role, status, location, department, bio string
}

func (u *userFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&u.fullName, "full-name", "", "full name")
	f.StringVar(&u.email, "email", "", "email address")
	f.StringVar(&u.phone, "phone", "", "phone number")
	f.StringVar(&u.role, "role", "", "admin, editor or viewer")
	f.StringVar(&u.status, "status", "", "active or inactive")
	f.StringVar(&u.location, "location", "", "city and country")
	f.StringVar(&u.department, "department", "", "department name")
	f.StringVar(&u.bio, "bio", "", "short introduction")
}

func usersCreateCmd(app *App) *cobra.Command {
	var uf userFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.dash.Users.Create(cmd.Context(), transport.CreateUserRequest{
				FullName:   uf.fullName,
				Email:      uf.email,
				Phone:      uf.phone,
				Role:       models.Role(uf.role),
				Status:     models.Status(uf.status),
				Location:   uf.location,
				Department: uf.department,
				Bio:        uf.bio,
			})
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "Created user %s.\n", user.ID)
			renderUser(cmd.OutOrStdout(), user)
			return nil
		},
	}
	uf.bind(cmd)
	return cmd
}

func usersUpdateCmd(app *App) *cobra.Command {
	var uf userFlags
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change the given fields of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			var patch transport.PatchUserRequest
			if f.Changed("full-name") {
				patch.FullName = &uf.fullName
			}
			if f.Changed("email") {
				patch.Email = &uf.email
			}
			if f.Changed("phone") {
				patch.Phone = &uf.phone
			}
			if f.Changed("role") {
				r := models.Role(uf.role)
				patch.Role = &r
			}
			if f.Changed("status") {
				s := models.Status(uf.status)
				patch.Status = &s
			}
			if f.Changed("location") {
				patch.Location = &uf.location
			}
			if f.Changed("department") {
				patch.Department = &uf.department
			}
			if f.Changed("bio") {
				patch.Bio = &uf.bio
			}
			if patch.Empty() {
				return errx.Validation(nothingToUpdate)
			}

			user, err := app.dash.Users.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "Updated user %s.\n", user.ID)
			renderUser(cmd.OutOrStdout(), user)
			return nil
		},
	}
	uf.bind(cmd)
	return cmd
}

func usersDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.dash.Users.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "Deleted user %s.\n", args[0])
			return nil
		},
	}
}
