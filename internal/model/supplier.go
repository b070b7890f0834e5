package model

type Supplier struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	ContactInfo string `gorm:"type:text;default:''" json:"contact_info"`
	Address     string `gorm:"type:text;default:''" json:"address"`
	Email       string `gorm:"type:varchar(255);default:''" json:"email" validate:"omitempty,email"`
	Phone       string `gorm:"type:varchar(20);default:''" json:"phone"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}
