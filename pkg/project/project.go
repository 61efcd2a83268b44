package project

import (
	"time"
)

// Project is a simple record of something time can be reported against.
type Project struct {
	ID          string
	Name        string
	Description string
	StartDate   time.Time
}
