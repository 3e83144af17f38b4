package domain

import "time"

type Consultation struct {
	ID            string
	DestinationID string
	CreatedAt     time.Time
}
