package model

// All lists every persisted model, in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&DynamicConfigModel{},
		&TaxonomyItemModel{},
		&ProfileSectionModel{},
		&ProfileTemplateModel{},
		&TeacherProfileModel{},
		&ActivityLogModel{},
		&NotificationModel{},
	}
}
