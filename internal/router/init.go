package router

import (
	"github.com/oksasatya/go-bucketlist-api/internal/application"
	"github.com/oksasatya/go-bucketlist-api/internal/container"
	handlers "github.com/oksasatya/go-bucketlist-api/internal/interface/http"
	"github.com/oksasatya/go-bucketlist-api/internal/router/modules"
)

type moduleDeps struct {
	Auth       *handlers.AuthHandler
	BucketList *handlers.BucketListHandler
	Item       *handlers.ItemHandler
	System     *handlers.SystemHandler
}

func buildDeps(c *container.Container) moduleDeps {
	authSvc := application.NewAuthService(c.Store, c.JWT, c.Logger, c.Mail, c.Config.AppName)
	listSvc := application.NewBucketListService(c.Store, c.Logger)
	itemSvc := application.NewItemService(c.Store, c.Logger)

	return moduleDeps{
		Auth:       handlers.NewAuthHandler(authSvc, c.Logger),
		BucketList: handlers.NewBucketListHandler(listSvc, c.Logger),
		Item:       handlers.NewItemHandler(itemSvc, c.Logger),
		System:     handlers.NewSystemHandler(c.Store, c.Config.AppName, c.Logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry, c *container.Container) {
	deps := buildDeps(c)
	r.Add(modules.NewSystemModule(deps.System))
	r.Add(modules.NewAuthModule(deps.Auth, c.JWT))
	r.Add(modules.NewBucketListModule(deps.BucketList, deps.Item, c.JWT))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
