package dto

// ExportQuery selects which report export to produce
type ExportQuery struct {
	Type   string `form:"type" binding:"required,oneof=overview registrations"`
	Format string `form:"format" binding:"omitempty,oneof=csv xlsx"`
}
