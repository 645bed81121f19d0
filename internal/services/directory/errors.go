package directory

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/admitdesk/internal/models"
)

// Directory errors
var (
	ErrInvalidStudentID    = errors.New("invalid student ID")
	ErrInvalidUniversityID = errors.New("invalid university ID")

	ErrStudentNotFound    = fmt.Errorf("student %w", models.ErrNotFound)
	ErrUniversityNotFound = fmt.Errorf("university %w", models.ErrNotFound)
)
