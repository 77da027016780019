package main

import (
	"fmt"
	"os"

	"portfolio/config"
	"portfolio/logutils"
	"portfolio/mail"
	"portfolio/media"
	"portfolio/orm"
	"portfolio/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logutils.Log.Info("no .env file, using process environment")
	}
	cfg := config.GetConfig()

	err := orm.InitDB()
	if err != nil {
		fmt.Println("err init:", err)
		os.Exit(1)
	}

	mediaClient, err := media.NewClient(cfg)
	if err != nil {
		logutils.Log.Fatal("init media client: ", err)
	}

	r := gin.Default()
	r.Use(cors.Default())

	store := orm.NewProjectDB(orm.DB())
	service.RegisterProject(r, service.NewProjectService(store, mediaClient))
	service.RegisterHealth(r, store)

	if cfg.SMTP.Enabled {
		mailer, merr := mail.New(cfg)
		if merr != nil {
			logutils.Log.Fatal("init mailer: ", merr)
		}
		service.RegisterEmail(r, service.NewEmailService(mailer))
	}

	err = r.Run(":" + cfg.Server.Port)
	if err != nil {
		logutils.Log.Fatal(err)
	}
}
