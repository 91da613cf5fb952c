package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-bucketlist-api/internal/application"
	"github.com/oksasatya/go-bucketlist-api/internal/interface/middleware"
	"github.com/oksasatya/go-bucketlist-api/pkg/response"
)

type ItemHandler struct {
	Svc    *application.ItemService
	Logger *logrus.Logger
}

func NewItemHandler(svc *application.ItemService, logger *logrus.Logger) *ItemHandler {
	return &ItemHandler{Svc: svc, Logger: logger}
}

type createItemRequest struct {
	Name string `json:"name" binding:"required"`
}

// updateItemRequest leaves absent fields nil so that they are not touched.
type updateItemRequest struct {
	Name *string `json:"name"`
	Done *bool   `json:"done"`
}

func (h *ItemHandler) ids(c *gin.Context, withItem bool) (listID, itemID int64, ok bool) {
	if listID, ok = pathID(c, "id", application.ErrBucketListNotFound); !ok {
		return 0, 0, false
	}
	if !withItem {
		return listID, 0, true
	}
	if itemID, ok = pathID(c, "item_id", application.ErrItemNotFound); !ok {
		return 0, 0, false
	}
	return listID, itemID, true
}

// Create POST /api/v1/bucketlists/:id/items
func (h *ItemHandler) Create(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	listID, _, ok := h.ids(c, false)
	if !ok {
		return
	}
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	it, err := h.Svc.Create(c.Request.Context(), uid, listID, req.Name)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toItem(*it), "Item created", nil)
}

// List GET /api/v1/bucketlists/:id/items
func (h *ItemHandler) List(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	listID, _, ok := h.ids(c, false)
	if !ok {
		return
	}
	items, err := h.Svc.List(c.Request.Context(), uid, listID)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": toItems(items)}, "Items", nil)
}

// Get GET /api/v1/bucketlists/:id/items/:item_id
func (h *ItemHandler) Get(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	listID, itemID, ok := h.ids(c, true)
	if !ok {
		return
	}
	it, err := h.Svc.Get(c.Request.Context(), uid, listID, itemID)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toItem(*it), "Item", nil)
}

// Update PUT /api/v1/bucketlists/:id/items/:item_id
func (h *ItemHandler) Update(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	listID, itemID, ok := h.ids(c, true)
	if !ok {
		return
	}
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	it, err := h.Svc.Update(c.Request.Context(), uid, listID, itemID, application.ItemUpdate{
		Name: req.Name,
		Done: req.Done,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toItem(*it), "Item updated", nil)
}

// Delete DELETE /api/v1/bucketlists/:id/items/:item_id
func (h *ItemHandler) Delete(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	listID, itemID, ok := h.ids(c, true)
	if !ok {
		return
	}
	it, err := h.Svc.Delete(c.Request.Context(), uid, listID, itemID)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": it.ID},
		fmt.Sprintf("Item %s has been successfully deleted", it.Name), nil)
}
