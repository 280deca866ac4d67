package payload

import (
	"blockvault/internal/core"
	"strings"

	"github.com/jellydator/validation"
)

const (
	maxUsernameLen = 64
	// bcrypt ignores everything past 72 bytes
	maxPasswordLen = 72
)

// AuthRequest is the admin login body.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required, validation.Length(1, maxUsernameLen)),
		validation.Field(&a.Password, validation.Required, validation.Length(1, maxPasswordLen)),
	)
}

func (a AuthRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: strings.TrimSpace(a.Username),
		Password: a.Password,
	}
}
