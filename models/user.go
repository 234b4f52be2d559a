package models

import "time"

// User is a local account record. The ID is the subject identifier
// assigned by the external identity provider, not a generated value,
// so lookups by the verified principal's subject always hit the
// primary key.
type User struct {
	ID          string    `json:"id" db:"id"`
	Email       string    `json:"email" db:"email"`
	Username    string    `json:"username" db:"username"`
	Name        string    `json:"name" db:"name"`
	Avatar      *string   `json:"avatar,omitempty" db:"avatar"`
	Bio         *string   `json:"bio,omitempty" db:"bio"`
	GitHubURL   *string   `json:"githubUrl,omitempty" db:"github_url"`
	LinkedinURL *string   `json:"linkedinUrl,omitempty" db:"linkedin_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// PublicProfile is the externally visible projection of a User.
// The email address is deliberately excluded.
type PublicProfile struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Avatar      *string   `json:"avatar,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	GitHubURL   *string   `json:"githubUrl,omitempty"`
	LinkedinURL *string   `json:"linkedinUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Profile returns the public projection of u.
func (u User) Profile() PublicProfile {
	return PublicProfile{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Avatar:      u.Avatar,
		Bio:         u.Bio,
		GitHubURL:   u.GitHubURL,
		LinkedinURL: u.LinkedinURL,
		CreatedAt:   u.CreatedAt,
	}
}

// ProfileUpdate carries the mutable profile fields of a User.
// Nil fields are left unchanged.
type ProfileUpdate struct {
	Name        *string `json:"name,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	GitHubURL   *string `json:"githubUrl,omitempty"`
	LinkedinURL *string `json:"linkedinUrl,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (p ProfileUpdate) Empty() bool {
	return p.Name == nil && p.Avatar == nil && p.Bio == nil &&
		p.GitHubURL == nil && p.LinkedinURL == nil
}
