package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Watch represents a catalog record
type Watch struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Brand           string             `bson:"brand" json:"brand" validate:"required"`
	Model           string             `bson:"model" json:"model" validate:"required"`
	Reference       string             `bson:"reference" json:"reference" validate:"required"`
	Price           float64            `bson:"price" json:"price" validate:"gte=0"`
	Movement        string             `bson:"movement" json:"movement" validate:"required"`
	CaseSize        float64            `bson:"caseSize" json:"caseSize" validate:"gte=0"`
	WaterResistance float64            `bson:"waterResistance" json:"waterResistance" validate:"gte=0"`
	Images          []string           `bson:"images" json:"images"`
	Specifications  Specifications     `bson:"specifications" json:"specifications"`
	Reviews         []Review           `bson:"reviews" json:"reviews"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Specifications holds the physical details of a watch
type Specifications struct {
	Case     string `bson:"case" json:"case" validate:"required"`
	Dial     string `bson:"dial" json:"dial" validate:"required"`
	Bracelet string `bson:"bracelet" json:"bracelet" validate:"required"`
}

// Review is a user review embedded in a watch record
type Review struct {
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// ReviewCreate represents a submitted review
type ReviewCreate struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}

// WatchFilter narrows and pages a catalog listing
type WatchFilter struct {
	Brand    string
	Movement string
	PriceMin *float64
	PriceMax *float64
	Page     int64
	Limit    int64
}

// Pagination describes a page of listing results
type Pagination struct {
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Pages int64 `json:"pages"`
}

// WatchPage is one page of catalog records
type WatchPage struct {
	Watches    []Watch    `json:"watches"`
	Pagination Pagination `json:"pagination"`
}
