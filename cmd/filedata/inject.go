//go:build wireinject
// +build wireinject

package main

import (
	"github.com/ATenderholt/rainbow-filedata/internal/http"
	"github.com/ATenderholt/rainbow-filedata/internal/service"
	"github.com/ATenderholt/rainbow-filedata/internal/settings"
	"github.com/google/wire"
)

var api = wire.NewSet(
	http.NewChiMux,
	http.NewInvokeHandler,
	wire.Bind(new(http.NotificationHandler), new(*service.FileDataService)),
)

var storage = wire.NewSet(
	NewAwsConfig,
	NewDynamoClient,
	NewEntryStore,
)

var handler = wire.NewSet(
	storage,
	service.NewFileDataService,
	wire.Bind(new(service.Config), new(*settings.Config)),
)

// InjectHandler builds only what a Lambda invocation needs.
func InjectHandler(cfg *settings.Config) (*service.FileDataService, error) {
	wire.Build(handler)
	return nil, nil
}

func InjectApp(cfg *settings.Config) (App, error) {
	wire.Build(
		NewApp,
		api,
		handler,
	)
	return App{}, nil
}
