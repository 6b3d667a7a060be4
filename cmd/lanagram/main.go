// Package main boots the application: configured store, fixture data,
// session restore, and a first rendered frame printed as JSON.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"lanagram/internal/app"
	"lanagram/internal/bootstrap"
	"lanagram/internal/config"
	"lanagram/internal/lock"
	"lanagram/internal/render"
	"lanagram/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	rt, err := bootstrap.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open runtime: %v", err)
	}
	defer func() {
		if err := rt.Close(ctx); err != nil {
			log.Printf("Failed to close runtime: %v", err)
		}
	}()

	locks := lock.NewKeyed()
	auth := service.NewAuthService(rt.Users, rt.Store)
	posts := service.NewPostService(rt.Posts, locks)
	users := service.NewUserService(rt.Users, locks)
	projector := render.NewProjector(rt.Users, rt.Posts)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	renderer := app.RendererFunc(func(frame *app.Frame) {
		if err := enc.Encode(frame.Model); err != nil {
			log.Printf("Failed to encode frame: %v", err)
		}
	})

	controller := app.NewController(auth, posts, users, projector, renderer)
	controller.Start(ctx)
}
