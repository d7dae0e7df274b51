package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"wayfarer/internal/maps"
	"wayfarer/internal/modules/briefing"
)

func main() {
	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY environment variable not set")
	}

	destination := "Paris"
	if len(os.Args) > 1 {
		destination = os.Args[1]
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}

	client, err := maps.NewClient(apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize Maps client: %v", err)
	}

	limits := briefing.DefaultLimits()
	geo := maps.NewGeocodingService(client, logger)
	places := maps.NewPlacesService(client, logger)
	finder := briefing.NewAttractionFinder(geo, places, limits, logger)
	recommender := briefing.NewRestaurantRecommender(places, limits, logger)
	compiler := briefing.NewCompiler(places, finder, recommender, logger)

	bundle, rendered := compiler.Compile(context.Background(), briefing.DestinationQuery{
		Name:      destination,
		Interests: []string{"culture", "food"},
		Budget:    briefing.BudgetMid,
	})

	fmt.Printf("Destination: %s\n", destination)
	fmt.Printf("Attractions found: %d\n", len(bundle.Attractions))
	fmt.Printf("Restaurants found: %d\n", len(bundle.Restaurants))
	fmt.Println()
	fmt.Println(rendered)
}
