package model

import (
	"time"

	"gorm.io/datatypes"
)

// MediaAttributes is the metadata the media host reports for an uploaded
// image. Stored as one JSON column, never queried.
type MediaAttributes struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Bytes  int    `json:"bytes"`
}

// Project is the single persisted entity: one portfolio item.
// Description is a pointer so a request without the field reaches the
// database as NULL and fails there, not in the handler.
type Project struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Description  *string `gorm:"type:varchar(512);not null" json:"description"`
	Image        string  `gorm:"type:varchar(512);not null" json:"image"`
	CloudinaryID string  `gorm:"type:varchar(256)" json:"cloudinaryId"`

	Media datatypes.JSONType[MediaAttributes] `json:"media"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
