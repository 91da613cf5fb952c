package entity

import "time"

// Item belongs to exactly one bucket list; its name is unique within that list.
type Item struct {
	ID           int64
	Name         string
	BucketListID int64
	Done         bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
