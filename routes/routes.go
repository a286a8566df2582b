package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storefront/config"
	"storefront/controllers"
	"storefront/middleware"
)

func Register(r *gin.Engine, a *controllers.API) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.GetEnv("CORS_ORIGIN", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}))

	api := r.Group("/api")
	{
		api.POST("/users/signup", a.SignUp)
		api.POST("/users/signin", a.SignIn)
		api.POST("/users/reset-password", a.ResetPassword)

		api.GET("/products", a.GetProducts)

		protected := api.Group("/")
		protected.Use(middleware.Auth(a.JWTSecret))
		{
			protected.GET("/users/details/:email", a.GetUserDetails)

			protected.GET("/cart", a.GetCart)
			protected.POST("/cart", a.AddToCart)
			protected.PUT("/cart/:productId", a.UpdateCart)
			protected.DELETE("/cart/:productId", a.RemoveFromCart)

			protected.POST("/orders", a.Checkout)
			protected.GET("/orders", a.GetOrders)

			admin := protected.Group("/admin")
			admin.Use(middleware.Admin())
			{
				admin.GET("/products", a.GetProductsAdmin)
				admin.POST("/products", a.CreateProduct)
				admin.PUT("/products", a.UpdateProduct)
				admin.DELETE("/products/:id", a.DeleteProduct)

				admin.GET("/orders", a.GetOrdersAdmin)
				admin.GET("/orders/:id", a.GetOrderByIDAdmin)
				admin.PUT("/orders/:id/status", a.UpdateOrderStatus)

				admin.GET("/users", a.GetUsersAdmin)
			}
		}
	}
}
