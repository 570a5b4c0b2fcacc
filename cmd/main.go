package main

import (
	"os"

	"github.com/Asif-Uchchas/qalby/config"
	"github.com/Asif-Uchchas/qalby/routes"
	"github.com/Asif-Uchchas/qalby/utils"
)

func main() {
	config.InitDB()
	utils.InitMailer()

	r := routes.SetupRouter(config.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
