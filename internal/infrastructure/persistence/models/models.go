package models

// All returns every model in migration order
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&ProfileModel{},
		&RevokedTokenModel{},
		&UniversityModel{},
		&FormationModel{},
		&ApplicationModel{},
		&DocumentModel{},
		&ConversationModel{},
		&ParticipantModel{},
		&MessageModel{},
		&NotificationModel{},
		&EventModel{},
		&RegistrationModel{},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
