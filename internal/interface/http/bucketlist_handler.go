package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-bucketlist-api/internal/application"
	"github.com/oksasatya/go-bucketlist-api/internal/domain/pagination"
	"github.com/oksasatya/go-bucketlist-api/internal/interface/middleware"
	"github.com/oksasatya/go-bucketlist-api/pkg/response"
)

type BucketListHandler struct {
	Svc    *application.BucketListService
	Logger *logrus.Logger
}

func NewBucketListHandler(svc *application.BucketListService, logger *logrus.Logger) *BucketListHandler {
	return &BucketListHandler{Svc: svc, Logger: logger}
}

type bucketListRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create POST /api/v1/bucketlists
func (h *BucketListHandler) Create(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	var req bucketListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	bl, err := h.Svc.Create(c.Request.Context(), uid, req.Name)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toBucketList(*bl), "Bucketlist created", nil)
}

// List GET /api/v1/bucketlists?q=&page=&limit=
func (h *BucketListHandler) List(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	params, err := pagination.Parse(c.Query("page"), c.Query("limit"), c.Query("q"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	page, err := h.Svc.List(c.Request.Context(), uid, params)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}

	route := c.FullPath()
	out := bucketListPageResponse{
		NextPage:     page.Window.NextLink(route),
		PreviousPage: page.Window.PreviousLink(route),
		BucketLists:  make([]bucketListResponse, 0, len(page.BucketLists)),
	}
	for _, bl := range page.BucketLists {
		out.BucketLists = append(out.BucketLists, toBucketList(bl))
	}
	response.Success(c, http.StatusOK, out, "Bucketlists", gin.H{
		"page":  page.Window.Page,
		"limit": page.Window.Limit,
		"total": page.Window.Total,
	})
}

// Get GET /api/v1/bucketlists/:id
func (h *BucketListHandler) Get(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	id, ok := pathID(c, "id", application.ErrBucketListNotFound)
	if !ok {
		return
	}
	bl, err := h.Svc.Get(c.Request.Context(), uid, id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toBucketList(*bl), "Bucketlist", nil)
}

// Update PUT /api/v1/bucketlists/:id
func (h *BucketListHandler) Update(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	id, ok := pathID(c, "id", application.ErrBucketListNotFound)
	if !ok {
		return
	}
	var req bucketListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	bl, err := h.Svc.Update(c.Request.Context(), uid, id, req.Name)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toBucketList(*bl), "Bucketlist updated", nil)
}

// Delete DELETE /api/v1/bucketlists/:id
func (h *BucketListHandler) Delete(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	id, ok := pathID(c, "id", application.ErrBucketListNotFound)
	if !ok {
		return
	}
	bl, err := h.Svc.Delete(c.Request.Context(), uid, id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": bl.ID},
		fmt.Sprintf("Bucketlist %s has been successfully deleted", bl.Name), nil)
}
