package transform

import (
	"github.com/google/uuid"
)

// NewUUID returns a random (version 4) UUID in canonical lowercase form.
func NewUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
