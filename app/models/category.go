package models

import "time"

const DefaultCategoryIcon = "fas fa-utensils"

// Category represents a recipe category from the fixed `categorias` table.
// Categories are created through the admin path and read-only afterwards.
type Category struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	Name         string    `gorm:"column:nombre;type:varchar(255);not null;uniqueIndex" json:"nombre"`
	Description  string    `gorm:"column:descripcion;type:varchar(500)" json:"descripcion"`
	Icon         string    `gorm:"column:icono;type:varchar(50);default:'fas fa-utensils'" json:"icono"`
	Active       bool      `gorm:"column:activo;default:true" json:"activo"`
	DisplayOrder int       `gorm:"column:orden;default:0" json:"orden"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Category) TableName() string {
	return "categorias"
}
