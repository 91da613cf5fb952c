package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-bucketlist-api/internal/interface/http"
	"github.com/oksasatya/go-bucketlist-api/internal/interface/middleware"
	"github.com/oksasatya/go-bucketlist-api/pkg/helpers"
)

// BucketListModule registers the bucket list and item routes. All of them
// sit behind the auth guard.
type BucketListModule struct {
	Lists *handlers.BucketListHandler
	Items *handlers.ItemHandler
	JWT   *helpers.JWTManager
}

func NewBucketListModule(lists *handlers.BucketListHandler, items *handlers.ItemHandler, jwt *helpers.JWTManager) *BucketListModule {
	return &BucketListModule{Lists: lists, Items: items, JWT: jwt}
}

func (m *BucketListModule) Register(rg *gin.RouterGroup) {
	bl := rg.Group("/bucketlists")
	bl.Use(middleware.Auth(m.JWT))
	{
		bl.POST("", m.Lists.Create)
		bl.GET("", m.Lists.List)
		bl.GET("/:id", m.Lists.Get)
		bl.PUT("/:id", m.Lists.Update)
		bl.DELETE("/:id", m.Lists.Delete)

		bl.POST("/:id/items", m.Items.Create)
		bl.GET("/:id/items", m.Items.List)
		bl.GET("/:id/items/:item_id", m.Items.Get)
		bl.PUT("/:id/items/:item_id", m.Items.Update)
		bl.DELETE("/:id/items/:item_id", m.Items.Delete)
	}
}
