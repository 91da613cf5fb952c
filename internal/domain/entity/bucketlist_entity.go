package entity

import "time"

// BucketList is scoped to the user in CreatedBy; its name is unique per owner.
type BucketList struct {
	ID        int64
	Name      string
	CreatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time

	// Items is filled by reads that embed the list contents.
	Items []Item
}
