package models

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const (
	SubscriptionFree    = "gratuito"
	SubscriptionPremium = "premium"
)

// ErrInvalidPasswordFormat is returned when a password violates the policy:
// 8 to 20 characters drawn from letters, digits and the symbols !@#$%^&*.
var ErrInvalidPasswordFormat = errors.New("la contraseña no cumple con los requisitos de formato (8-20 caracteres, sin espacios)")

var passwordPattern = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*]{8,20}$`)

// User represents a row of the fixed `usuarios` table. The password hash is
// never serialized; only this internal shape carries it.
type User struct {
	ID                 uint       `gorm:"primaryKey;column:id" json:"id"`
	Name               string     `gorm:"column:nombre;type:varchar(100);not null" json:"nombre"`
	Email              string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash       string     `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	SubscriptionType   string     `gorm:"column:tipo_suscripcion;type:varchar(50);default:'gratuito'" json:"tipo_suscripcion"`
	SubscriptionStart  *time.Time `gorm:"column:fecha_suscripcion;type:date" json:"fecha_suscripcion"`
	SubscriptionExpiry *time.Time `gorm:"column:fecha_vencimiento;type:date" json:"fecha_vencimiento"`
	Active             bool       `gorm:"column:activo;default:true" json:"activo"`
	LoginAttempts      int        `gorm:"column:intentos_login;default:0" json:"intentos_login"`
	LockedUntil        *time.Time `gorm:"column:bloqueado_hasta" json:"bloqueado_hasta"`
	LastLogin          *time.Time `gorm:"column:ultimo_login" json:"ultimo_login"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          *time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "usuarios"
}

// SubscriptionActive reports whether the user holds a premium subscription
// that has not expired as of the given day. The comparison is by calendar
// date: an expiry of today still counts as active.
func (u *User) SubscriptionActive(today time.Time) bool {
	if u.SubscriptionType != SubscriptionPremium || u.SubscriptionExpiry == nil {
		return false
	}

	return !truncateToDate(*u.SubscriptionExpiry).Before(truncateToDate(today))
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// UserCreate carries the validated registration input.
type UserCreate struct {
	Name     string `json:"nombre" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

func (u *UserCreate) Validate() error {
	v := validator.New()
	if err := v.Struct(u); err != nil {
		return err
	}

	return ValidatePasswordPolicy(u.Password)
}

// ValidatePasswordPolicy enforces the password format contract.
func ValidatePasswordPolicy(password string) error {
	if !passwordPattern.MatchString(password) {
		return ErrInvalidPasswordFormat
	}

	return nil
}

// HashPassword derives a salted bcrypt hash from the plain password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash. Rows
// written before the bcrypt rollout hold hex SHA-256 digests; those still
// verify through the legacy path.
func CheckPasswordHash(password, hash string) bool {
	if strings.HasPrefix(hash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}

	return checkLegacyHash(password, hash)
}

func checkLegacyHash(password, hash string) bool {
	sum := sha256.Sum256([]byte(password))
	digest := hex.EncodeToString(sum[:])

	return subtle.ConstantTimeCompare([]byte(digest), []byte(strings.ToLower(hash))) == 1
}

// CheckPassword verifies the provided password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.PasswordHash)
}
