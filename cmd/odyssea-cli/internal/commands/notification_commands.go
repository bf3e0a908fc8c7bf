package commands

import (
	"fmt"

	"github.com/Tsilavina4274/odyssea/internal/app"
	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// NotificationCommandHandler encapsulates the notification commands.
type NotificationCommandHandler struct {
	configPath *string
}

// NewNotificationCommandHandler returns a handler reading its settings from configPath
func NewNotificationCommandHandler(configPath *string) *NotificationCommandHandler {
	return &NotificationCommandHandler{configPath: configPath}
}

// BroadcastCmd sends a system notification to every user of a type
func (commandHandler *NotificationCommandHandler) BroadcastCmd(cmd *cobra.Command, _ []string) error {
	userType, err := cmd.Flags().GetString("user-type")
	if err != nil {
		return fmt.Errorf("invalid user-type flag: %w", err)
	}
	title, err := cmd.Flags().GetString("title")
	if err != nil {
		return fmt.Errorf("invalid title flag: %w", err)
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}
	priority, err := cmd.Flags().GetString("priority")
	if err != nil {
		return fmt.Errorf("invalid priority flag: %w", err)
	}

	switch users.UserType(userType) {
	case users.UserTypeStudent, users.UserTypeEstablishment, users.UserTypeAdmin:
	default:
		return fmt.Errorf("unknown user type %q", userType)
	}

	env, err := setupEnvironment(*commandHandler.configPath)
	if err != nil {
		return err
	}
	defer closeDB(env)

	notificationRepo, err := persistence.NewGormNotificationRepository(env.db, env.logger)
	if err != nil {
		return err
	}
	profileRepo, err := persistence.NewGormProfileRepository(env.db, env.logger)
	if err != nil {
		return err
	}
	eventRepo, err := persistence.NewGormEventRepository(env.db, env.logger)
	if err != nil {
		return err
	}
	notificationService, err := app.NewNotificationService(notificationRepo, profileRepo, eventRepo, discardPublisher{}, env.logger)
	if err != nil {
		return err
	}

	count, err := notificationService.BroadcastToUserType(cmd.Context(), users.UserType(userType), notifications.CreateInput{
		Type:     notifications.TypeSystem,
		Title:    title,
		Message:  message,
		Priority: notifications.Priority(priority),
	})
	if err != nil {
		return err
	}

	env.logger.Info(fmt.Sprintf("notified %d %s accounts", count, userType))
	return nil
}

// InitNotificationCommands registers the notifications command group
func InitNotificationCommands(rootCmd *cobra.Command, configPath *string) error {
	handler := NewNotificationCommandHandler(configPath)

	notificationsCmd := &cobra.Command{
		Use:   "notifications",
		Short: "Send notifications",
	}

	broadcastCmd := &cobra.Command{
		Use:   "broadcast",
		Short: "Notify every account of a user type",
		RunE:  handler.BroadcastCmd,
	}
	broadcastCmd.Flags().StringP("user-type", "", "", "Recipient user type (lyceen, universite, admin)")
	broadcastCmd.Flags().StringP("title", "", "", "Notification title")
	broadcastCmd.Flags().StringP("message", "", "", "Notification body")
	broadcastCmd.Flags().StringP("priority", "", string(notifications.PriorityMedium), "Priority (low, medium, high)")
	for _, name := range []string{"user-type", "title", "message"} {
		if err := broadcastCmd.MarkFlagRequired(name); err != nil {
			return fmt.Errorf("failed to mark %s as required: %w", name, err)
		}
	}

	notificationsCmd.AddCommand(broadcastCmd)
	rootCmd.AddCommand(notificationsCmd)
	return nil
}
