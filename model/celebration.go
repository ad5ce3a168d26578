package model

import (
	"time"

	"github.com/celebratehq/birthday-api/constant"
)

// CelebrationEntity represents the celebrate_friend table entity
type CelebrationEntity struct {
	ID            string     `db:"id" json:"id"`
	CreatedByID   string     `db:"created_by_id" json:"created_by_id"`
	ContactMethod string     `db:"contact_method" json:"contact_method"`
	Contact       string     `db:"contact" json:"contact"`
	Message       string     `db:"message" json:"message"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	ProcessedAt   *time.Time `db:"processed_at" json:"processed_at,omitempty"`
}

// MediaEntity represents the media table entity
type MediaEntity struct {
	ID                string    `db:"id" json:"id"`
	CelebrateFriendID string    `db:"celebrate_friend_id" json:"celebrate_friend_id"`
	URL               string    `db:"url" json:"url"`
	Type              string    `db:"type" json:"type"`
	Message           string    `db:"message" json:"message"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// CelebrationRequest for the celebrate-a-friend flow
type CelebrationRequest struct {
	ContactMethod constant.ContactMethod `json:"contact_method" validate:"required,oneof=email phone"`
	Contact       string                 `json:"contact" validate:"required"`
	Message       string                 `json:"message"`
	MediaType     constant.MediaType     `json:"media_type" validate:"omitempty,oneof=text voice image video"`
	Media         string                 `json:"media"`
}

type CelebrationResponse struct {
	ID        string    `json:"id"`
	MediaID   string    `json:"media_id"`
	CreatedAt time.Time `json:"created_at"`
}
