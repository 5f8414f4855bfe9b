package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account
type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Email        string               `bson:"email" json:"email" validate:"required,email"`
	PasswordHash string               `bson:"password" json:"-"`
	Name         string               `bson:"name" json:"name" validate:"required"`
	Preferences  Preferences          `bson:"preferences" json:"preferences"`
	Watchlist    []primitive.ObjectID `bson:"watchlist" json:"watchlist"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// Preferences holds a user's catalog preferences
type Preferences struct {
	Brands     []string   `bson:"brands" json:"brands"`
	PriceRange PriceRange `bson:"priceRange" json:"priceRange"`
	Movements  []string   `bson:"movements" json:"movements"`
}

type PriceRange struct {
	Min float64 `bson:"min" json:"min" validate:"gte=0"`
	Max float64 `bson:"max" json:"max"`
}

// DefaultPreferences returns the preferences assigned at registration
func DefaultPreferences() Preferences {
	return Preferences{
		Brands:     []string{},
		PriceRange: PriceRange{Min: 0, Max: 100000},
		Movements:  []string{},
	}
}

// UserCreate represents user registration data
type UserCreate struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

// UserLogin represents login credentials
type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PublicUser is the reduced user shape returned by register and login
type PublicUser struct {
	ID    primitive.ObjectID `json:"id"`
	Email string             `json:"email"`
	Name  string             `json:"name"`
}

// Public returns the reduced representation of u
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name}
}

// TokenPair represents an issued access/refresh token pair
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}
