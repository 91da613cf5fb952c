package handlers

import (
	"time"

	"github.com/oksasatya/go-bucketlist-api/internal/domain/entity"
)

type itemResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	BucketListID int64     `json:"bucketlist_id"`
	Done         bool      `json:"done"`
	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`
}

type bucketListResponse struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	CreatedBy    int64          `json:"created_by"`
	DateCreated  time.Time      `json:"date_created"`
	DateModified time.Time      `json:"date_modified"`
	Items        []itemResponse `json:"items"`
}

type bucketListPageResponse struct {
	NextPage     string               `json:"next_page"`
	PreviousPage string               `json:"previous_page"`
	BucketLists  []bucketListResponse `json:"bucketlists"`
}

func toItem(it entity.Item) itemResponse {
	return itemResponse{
		ID:           it.ID,
		Name:         it.Name,
		BucketListID: it.BucketListID,
		Done:         it.Done,
		DateCreated:  it.CreatedAt,
		DateModified: it.UpdatedAt,
	}
}

func toItems(items []entity.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItem(it))
	}
	return out
}

func toBucketList(bl entity.BucketList) bucketListResponse {
	return bucketListResponse{
		ID:           bl.ID,
		Name:         bl.Name,
		CreatedBy:    bl.CreatedBy,
		DateCreated:  bl.CreatedAt,
		DateModified: bl.UpdatedAt,
		Items:        toItems(bl.Items),
	}
}
