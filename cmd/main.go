package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"storefront/cart"
	"storefront/checkout"
	"storefront/config"
	"storefront/controllers"
	"storefront/database"
	"storefront/routes"
	"storefront/store"
)

func main() {
	config.LoadEnv()

	var res *database.Resources
	switch backend := config.GetEnv("STORAGE_BACKEND", "file"); backend {
	case "file":
		res = database.OpenFiles(config.GetEnv("DATA_DIR", "data"))
	case "mongo":
		var err error
		res, err = database.OpenMongo(config.GetEnv("MONGO_URI", ""), config.GetEnv("DB_NAME", "storefront"))
		if err != nil {
			log.Fatal("mongo connection error: ", err)
		}
	default:
		log.Fatalf("unknown STORAGE_BACKEND %q", backend)
	}

	s, err := store.Open(res)
	if err != nil {
		log.Fatal("store load error: ", err)
	}

	secret := config.GetEnv("JWT_SECRET", "")
	if secret == "" {
		log.Fatal("JWT_SECRET not set in environment variables")
	}

	carts := cart.NewManager(s)
	co := checkout.NewService(s, carts)
	api := controllers.New(s, carts, co, []byte(secret))

	r := gin.Default()
	r.SetTrustedProxies(nil)
	routes.Register(r, api)

	port := config.GetEnv("PORT", "8080")
	r.Run(":" + port)
}
