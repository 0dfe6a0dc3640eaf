package routes

import (
	"shopapi/app/controllers"
	"shopapi/pkg/router"
)

// Controllers bundles the handlers RegisterAPI mounts.
type Controllers struct {
	Auth        *controllers.AuthController
	Products    *controllers.ProductController
	Reviews     *controllers.ReviewController
	Orders      *controllers.OrderController
	Collections *controllers.CollectionController
}

// RegisterAPI mounts the JSON API under /api.
func RegisterAPI(r *router.Router, c Controllers) {
	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", "auth.register", c.Auth.Register)
	auth.Post("/login", "auth.login", c.Auth.Login)

	products := api.Group("/products")
	products.Get("/", "products.index", c.Products.List)
	products.Post("/", "products.store", c.Products.Create)
	products.Get("/{id}", "products.show", c.Products.Show)
	products.Put("/{id}", "products.update", c.Products.Update)
	products.Patch("/{id}", "products.patch", c.Products.Update)
	products.Delete("/{id}", "products.destroy", c.Products.Destroy)

	reviews := api.Group("/reviews")
	reviews.Get("/", "reviews.index", c.Reviews.List)
	reviews.Post("/", "reviews.store", c.Reviews.Create)
	reviews.Get("/{id}", "reviews.show", c.Reviews.Show)
	reviews.Put("/{id}", "reviews.update", c.Reviews.Update)
	reviews.Patch("/{id}", "reviews.patch", c.Reviews.Update)
	reviews.Delete("/{id}", "reviews.destroy", c.Reviews.Destroy)

	orders := api.Group("/orders")
	orders.Get("/", "orders.index", c.Orders.List)
	orders.Post("/", "orders.store", c.Orders.Create)
	orders.Get("/{id}", "orders.show", c.Orders.Show)
	orders.Put("/{id}", "orders.update", c.Orders.Update)
	orders.Patch("/{id}", "orders.patch", c.Orders.Update)
	orders.Delete("/{id}", "orders.destroy", c.Orders.Destroy)

	collections := api.Group("/collections")
	collections.Get("/", "collections.index", c.Collections.List)
	collections.Post("/", "collections.store", c.Collections.Create)
	collections.Get("/{id}", "collections.show", c.Collections.Show)
	collections.Put("/{id}", "collections.update", c.Collections.Update)
	collections.Patch("/{id}", "collections.patch", c.Collections.Update)
	collections.Delete("/{id}", "collections.destroy", c.Collections.Destroy)
}
