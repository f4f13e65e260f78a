package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"erp-tools-backend/config"
	apiv1 "erp-tools-backend/controllers/v1"
	"erp-tools-backend/fiberlog"
	"erp-tools-backend/initializers"
	"erp-tools-backend/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

func main() {
	initializers.InitAllServices()

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // limit of 100MB
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(apiV1)

	// остальные маршруты доступны только с токеном, действия пишутся в журнал
	apiV1.Use(middleware.AuthorizationRequired())
	apiV1.Use(middleware.AuditLog())
	apiv1.InitUsersApiRouters(apiV1)
	apiv1.InitRoleApiRouters(apiV1)
	apiv1.InitEmployeeApiRouters(apiV1)
	apiv1.InitDictApiRouters(apiV1)
	apiv1.InitMissionApiRouters(apiV1)
	apiv1.InitAvailabilityApiRouters(apiV1)
	apiv1.InitTrainingApiRouters(apiV1)
	apiv1.InitInterviewApiRouters(apiV1)
	apiv1.InitDashboardApiRouters(apiV1)
	apiv1.InitAuditApiRouters(apiV1)

	app.Hooks().OnShutdown()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
