package main

import (
	"github.com/pressbox/pressbox/config"
	"github.com/pressbox/pressbox/controllers"
	"github.com/pressbox/pressbox/routes"
	"github.com/pressbox/pressbox/store"
	"github.com/pressbox/pressbox/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase()

	endpointsDoc, err := controllers.LoadEndpoints(cfg.EndpointsPath)
	if err != nil {
		utils.Sugar.Fatalf("load endpoint catalogue: %v", err)
	}

	r := routes.SetupRouter(store.NewPostgres(db), endpointsDoc)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
