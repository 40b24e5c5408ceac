package domain

import (
	"encoding/json"
	"time"
)

// ProfileTypeInstagram is the only source category this service ingests.
const ProfileTypeInstagram = "instagram"

// Profile is one row per Instagram username.
type Profile struct {
	ID             int64
	Username       string
	FullName       string
	Biography      string
	ProfileData    json.RawMessage // raw upstream user object, nil when unknown
	ProfileType    string
	IsPrivate      bool
	FollowersCount int64
	FollowingCount int64
	IsVerified     bool
	IsCarProfile   bool
	LastUpdated    time.Time
}

// ProfileAttributes are the mutable profile fields supplied by a full profile response.
type ProfileAttributes struct {
	FullName       string
	Biography      string
	Raw            json.RawMessage
	IsPrivate      bool
	FollowersCount int64
	FollowingCount int64
	IsVerified     bool
}

// ToProfile builds the row written by the full-attribute upsert.
func (a ProfileAttributes) ToProfile(username string, now time.Time) Profile {
	return Profile{
		Username:       username,
		FullName:       a.FullName,
		Biography:      a.Biography,
		ProfileData:    a.Raw,
		ProfileType:    ProfileTypeInstagram,
		IsPrivate:      a.IsPrivate,
		FollowersCount: a.FollowersCount,
		FollowingCount: a.FollowingCount,
		IsVerified:     a.IsVerified,
		LastUpdated:    now,
	}
}
