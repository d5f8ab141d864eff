package commands

import (
	"fmt"

	"adboard/cmd/app"
	handlers "adboard/internal/handler"
	"adboard/internal/models"
	"adboard/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// adminFlags carries the same bounds as public registration.
type adminFlags struct {
	Email     string `json:"email" validate:"required,email,min=4,max=32"`
	Password  string `json:"password" validate:"required,min=8,max=16"`
	FirstName string `json:"first-name" validate:"required,min=2,max=16"`
	LastName  string `json:"last-name" validate:"required,min=2,max=16"`
	Phone     string `json:"phone" validate:"required,phone"`
}

var admin adminFlags

// request validates the flags and builds an ADMIN registration.
func (f adminFlags) request() (service.RegisterRequest, error) {
	if err := handlers.NewValidator().Struct(f); err != nil {
		return service.RegisterRequest{}, fmt.Errorf("invalid admin flags: %w", err)
	}

	return service.RegisterRequest{
		Username:  f.Email,
		Password:  f.Password,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Phone:     f.Phone,
		Role:      models.RoleAdmin,
	}, nil
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Register a user with the ADMIN role",
	Long: `Register a user with the ADMIN role. Public registration only
creates USER accounts.

Example:
  adboard create-admin --email admin@example.com --password s3cretpass \
    --first-name Admin --last-name Admin --phone "+7 (999) 000-00-00"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := admin.request()
		if err != nil {
			return err
		}

		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		db, _, services, err := app.App(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer db.CloseDB()

		user, err := services.Auth.Register(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		log.Info("admin created", zap.Int64("id", user.ID), zap.String("email", user.Username))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createAdminCmd)

	flags := createAdminCmd.Flags()
	flags.StringVar(&admin.Email, "email", "", "Login e-mail")
	flags.StringVar(&admin.Password, "password", "", "Password")
	flags.StringVar(&admin.FirstName, "first-name", "", "First name")
	flags.StringVar(&admin.LastName, "last-name", "", "Last name")
	flags.StringVar(&admin.Phone, "phone", "", "Phone number")

	createAdminCmd.MarkFlagRequired("email")
	createAdminCmd.MarkFlagRequired("password")
}
