package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultDifficulty = "Fácil"
	DefaultAuthor     = "Anónimo"
)

// Recipe represents a row of the fixed `recetas` table. CategoryName is not a
// column; list and detail queries populate it from the joined category.
type Recipe struct {
	ID              uint       `gorm:"primaryKey;column:id" json:"id"`
	Title           string     `gorm:"column:titulo;type:varchar(255);not null" json:"titulo"`
	Description     string     `gorm:"column:descripcion;type:text" json:"descripcion"`
	Ingredients     string     `gorm:"column:ingredientes;type:text;not null" json:"ingredientes"`
	Instructions    string     `gorm:"column:instrucciones;type:text;not null" json:"instrucciones"`
	PrepTimeMinutes int        `gorm:"column:tiempo_preparacion;default:0" json:"tiempo_preparacion"`
	Servings        int        `gorm:"column:porciones;default:1" json:"porciones"`
	Difficulty      string     `gorm:"column:dificultad;type:varchar(50);default:'Fácil'" json:"dificultad"`
	CategoryID      *uint      `gorm:"column:categoria_id" json:"categoria_id"`
	CategoryName    string     `gorm:"column:categoria_nombre;->;-:migration" json:"categoria_nombre"`
	ImageURL        string     `gorm:"column:imagen_url;type:varchar(500)" json:"imagen_url"`
	Author          string     `gorm:"column:autor;type:varchar(100);default:'Anónimo'" json:"autor"`
	IsPremium       bool       `gorm:"column:es_premium;default:false" json:"es_premium"`
	Active          bool       `gorm:"column:activo;default:true" json:"activo"`
	Views           int        `gorm:"column:vistas;default:0" json:"vistas"`
	Likes           int        `gorm:"column:likes;default:0" json:"likes"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       *time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Recipe) TableName() string {
	return "recetas"
}

// RecipeCreate carries the validated input for creating a recipe. The bounds
// mirror the schema contract: preparation time must be positive and a recipe
// serves between 1 and 20 portions.
type RecipeCreate struct {
	Title           string `json:"titulo" validate:"required,max=255"`
	Description     string `json:"descripcion"`
	Ingredients     string `json:"ingredientes" validate:"required"`
	Instructions    string `json:"instrucciones" validate:"required"`
	PrepTimeMinutes int    `json:"tiempo_preparacion" validate:"required,gt=0"`
	Servings        int    `json:"porciones" validate:"required,gt=0,lte=20"`
	Difficulty      string `json:"dificultad" validate:"max=50"`
	CategoryID      uint   `json:"categoria_id" validate:"required"`
	ImageURL        string `json:"imagen_url" validate:"omitempty,max=500"`
	Author          string `json:"autor" validate:"max=100"`
	IsPremium       bool   `json:"es_premium"`
}

func (r *RecipeCreate) Validate() error {
	v := validator.New()

	return v.Struct(r)
}

// ToRecipe maps the input onto a new Recipe row with the server-side defaults
// applied: active, zero views and likes, default difficulty and author.
func (r *RecipeCreate) ToRecipe() *Recipe {
	difficulty := r.Difficulty
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}
	author := r.Author
	if author == "" {
		author = DefaultAuthor
	}
	categoryID := r.CategoryID

	return &Recipe{
		Title:           r.Title,
		Description:     r.Description,
		Ingredients:     r.Ingredients,
		Instructions:    r.Instructions,
		PrepTimeMinutes: r.PrepTimeMinutes,
		Servings:        r.Servings,
		Difficulty:      difficulty,
		CategoryID:      &categoryID,
		ImageURL:        r.ImageURL,
		Author:          author,
		IsPremium:       r.IsPremium,
		Active:          true,
	}
}
