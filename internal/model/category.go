package model

// Category groups products under a unique, human-readable name.
type Category struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:255;not null;uniqueIndex"`
}

// TableName pins the table name used by gorm.
func (c *Category) TableName() string {
	return "category"
}

// CategoryView is the {id, name} projection returned by read operations.
type CategoryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryPayload is the request body for creating or renaming a category.
type CategoryPayload struct {
	Name string `json:"name" validate:"notblank"`
}
