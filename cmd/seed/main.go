// Package main seeds demo data into the configured store.
package main

import (
	"context"
	"flag"
	"log"

	"lanagram/internal/bootstrap"
	"lanagram/internal/config"
	"lanagram/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 8, "number of demo users to create")
	numPosts := flag.Int("posts", 24, "number of demo posts to create")
	maxDays := flag.Int("max-days", 90, "spread post timestamps over this many days back")
	randSeed := flag.Int64("seed", 0, "fixed random seed (0 = time-based)")
	preset := flag.String("preset", "", "path to a YAML seed preset to apply instead of random data")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	// The runtime already ensures the fixture account; disable its own
	// demo seeding so the flags here are the single source of truth.
	cfg.SeedDemo = false
	cfg.SeedPreset = ""

	rt, err := bootstrap.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open runtime: %v", err)
	}
	defer func() {
		if err := rt.Close(ctx); err != nil {
			log.Printf("Failed to close runtime: %v", err)
		}
	}()

	if *preset != "" {
		p, err := seed.LoadPreset(*preset)
		if err != nil {
			log.Fatalf("Failed to load preset: %v", err)
		}
		if err := p.Apply(ctx, rt.Users, rt.Posts); err != nil {
			log.Fatalf("Failed to apply preset: %v", err)
		}
		log.Printf("Applied preset %s: %d users, %d posts", *preset, len(p.Users), len(p.Posts))
		return
	}

	factory := seed.NewFactory(rt.Users, rt.Posts, seed.Options{
		NumUsers: *numUsers,
		NumPosts: *numPosts,
		MaxDays:  *maxDays,
		Seed:     *randSeed,
	})
	if err := factory.Mesh(ctx); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}
	log.Printf("Seeded %d users and %d posts", *numUsers, *numPosts)
}
