package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/auth"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence"
	"github.com/Tsilavina4274/odyssea/internal/pkg/validators"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// UserCommandHandler encapsulates account administration commands.
type UserCommandHandler struct {
	configPath *string
}

// NewUserCommandHandler returns a handler reading its settings from configPath
func NewUserCommandHandler(configPath *string) *UserCommandHandler {
	return &UserCommandHandler{configPath: configPath}
}

// CreateAdminCmd creates an administrator account. Admins cannot sign up through the API.
func (commandHandler *UserCommandHandler) CreateAdminCmd(cmd *cobra.Command, _ []string) error {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}
	firstName, err := cmd.Flags().GetString("first-name")
	if err != nil {
		return fmt.Errorf("invalid first-name flag: %w", err)
	}
	lastName, err := cmd.Flags().GetString("last-name")
	if err != nil {
		return fmt.Errorf("invalid last-name flag: %w", err)
	}

	env, err := setupEnvironment(*commandHandler.configPath)
	if err != nil {
		return err
	}
	defer closeDB(env)

	userRepo, err := persistence.NewGormUserRepository(env.db, env.logger)
	if err != nil {
		return err
	}

	input := users.SignUpInput{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		UserType:  users.UserTypeAdmin,
	}
	user, err := CreateAdmin(cmd.Context(), userRepo, auth.NewBcryptHasher(0), input)
	if err != nil {
		return err
	}

	env.logger.Info("administrator created with id ", user.ID)
	return nil
}

// CreateAdmin stores an admin user and its profile after the same checks sign up applies
func CreateAdmin(ctx context.Context, userRepo users.UserRepository, hasher users.PasswordHasher, input users.SignUpInput) (*users.User, error) {
	input.UserType = users.UserTypeAdmin
	if err := input.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}

	email := users.NormalizeEmail(input.Email)
	if err := validators.CheckPassword(input.Password, email, input.FirstName, input.LastName); err != nil {
		return nil, fmt.Errorf("%w: %v", users.ErrWeakPassword, err)
	}

	_, err := userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, users.ErrEmailExists
	case !errors.Is(err, shared.ErrNotFound):
		return nil, err
	}

	hash, err := hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &users.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &users.Profile{
		ID:                 uuid.NewString(),
		UserID:             user.ID,
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		UserType:           users.UserTypeAdmin,
		IsActive:           true,
		EmailNotifications: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := userRepo.Create(ctx, user, profile); err != nil {
		return nil, err
	}
	return user, nil
}

// InitUserCommands registers the users command group
func InitUserCommands(rootCmd *cobra.Command, configPath *string) error {
	handler := NewUserCommandHandler(configPath)

	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts",
	}

	createAdminCmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE:  handler.CreateAdminCmd,
	}
	createAdminCmd.Flags().StringP("email", "", "", "Email address of the administrator")
	createAdminCmd.Flags().StringP("password", "", "", "Initial password")
	createAdminCmd.Flags().StringP("first-name", "", "", "First name")
	createAdminCmd.Flags().StringP("last-name", "", "", "Last name")
	for _, name := range []string{"email", "password", "first-name", "last-name"} {
		if err := createAdminCmd.MarkFlagRequired(name); err != nil {
			return fmt.Errorf("failed to mark %s as required: %w", name, err)
		}
	}

	usersCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(usersCmd)
	return nil
}
