package models

import "time"

// SubscriptionPlan represents a row of the fixed `planes_suscripcion` table.
// Plan names are the only keys the subscribe operation accepts.
type SubscriptionPlan struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	Name         string    `gorm:"column:nombre;type:varchar(100);not null;uniqueIndex" json:"nombre"`
	Price        float64   `gorm:"column:precio;not null" json:"precio"`
	DurationDays int       `gorm:"column:duracion_dias;not null" json:"duracion_dias"`
	Description  string    `gorm:"column:descripcion;type:varchar(500)" json:"descripcion"`
	Active       bool      `gorm:"column:activo;default:true" json:"activo"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SubscriptionPlan) TableName() string {
	return "planes_suscripcion"
}
