package models

// AllModels returns all model structs for auto-migration.
// Sales reference products but no foreign key is created (see Sale).
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Client{},
		&Product{},
		&Sale{},
	}
}
