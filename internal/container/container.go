// Package container holds the components constructed at startup and shared
// across packages. It is built once in main and passed explicitly; nothing
// here is global.
package container

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-bucketlist-api/config"
	"github.com/oksasatya/go-bucketlist-api/internal/application"
	"github.com/oksasatya/go-bucketlist-api/internal/domain/repository"
	"github.com/oksasatya/go-bucketlist-api/pkg/helpers"
)

type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Store  repository.Store
	JWT    *helpers.JWTManager

	// Mail publishes welcome-email jobs; nil when mail sending is disabled.
	Mail application.JobPublisher
}

func New(cfg *config.Config, logger *logrus.Logger, store repository.Store, jwt *helpers.JWTManager) *Container {
	return &Container{Config: cfg, Logger: logger, Store: store, JWT: jwt}
}

// WithMail sets the job publisher used for welcome emails.
func (c *Container) WithMail(p application.JobPublisher) *Container {
	c.Mail = p
	return c
}
