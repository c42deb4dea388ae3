package models

// User is the profile stored at users/{id}.
type User struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Username string `json:"username,omitempty"`
	Major    string `json:"major"`
	Year     int    `json:"year" validate:"gte=0"`
	Bio      string `json:"bio"`
}

func (u *User) Attendee() Attendee {
	return Attendee{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}
