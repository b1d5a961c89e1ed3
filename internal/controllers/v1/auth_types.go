package v1

import (
	"github.com/pennywise-app/backend/internal/models"
)

type UserEditable struct {
	Name     string `json:"name" example:"Ada" default:""`                             // Display name
	Email    string `json:"email" example:"ada@example.com"`                           // Email address, used to log in
	Password string `json:"password" example:"correct horse battery staple" minLength:"1"` // Plain text password, only ever stored as a bcrypt hash
}

// model returns the database resource for the API representation of the editable fields
func (editable UserEditable) model() models.User {
	return models.User{
		Name:  editable.Name,
		Email: editable.Email,
	}
}

type LoginEditable struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// User is the representation of a User in API v1. The password hash
// never leaves the server.
type User struct {
	models.DefaultModel
	Name  string `json:"name" example:"Ada"`
	Email string `json:"email" example:"ada@example.com"`
}

// newUser returns the API v1 representation of the resource
func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Email:        model.Email,
	}
}

type UserResponse struct {
	Data  *User   `json:"data"`                                            // The User data, if the request was successful
	Error *string `json:"error" example:"the email or password is incorrect"` // The error, if any occurred
}
