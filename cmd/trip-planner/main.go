package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	lib "github.com/theoremus-urban-solutions/trip-planner"
	"github.com/theoremus-urban-solutions/trip-planner/config"
	"github.com/theoremus-urban-solutions/trip-planner/fare"
	"github.com/theoremus-urban-solutions/trip-planner/geo"
	"github.com/theoremus-urban-solutions/trip-planner/network"
	"github.com/theoremus-urban-solutions/trip-planner/planner"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	dataPath := flag.String("data", "", "network data file (overrides config)")
	originLat := flag.Float64("originLat", 0, "origin latitude (oneshot)")
	originLon := flag.Float64("originLon", 0, "origin longitude (oneshot)")
	destLat := flag.Float64("destLat", 0, "destination latitude (oneshot)")
	destLon := flag.Float64("destLon", 0, "destination longitude (oneshot)")
	passenger := flag.String("passenger", "", "passenger type: general|student|senior")
	payment := flag.String("payment", "", "payment method: cash|card|transitcard")
	balance := flag.Float64("balance", -1, "transit card balance (required for transitcard)")
	sortBy := flag.String("sortBy", "fare", "itinerary ordering: fare|duration")
	flag.Parse()

	lib.InitLogging()
	_ = godotenv.Load()
	if err := config.LoadAppConfig(); err != nil {
		panic(err)
	}
	if *dataPath != "" {
		config.Config.Network.DataPath = *dataPath
	}

	graph, tariff, err := network.LoadNetworkFile(config.Config.Network.DataPath)
	if err != nil {
		panic(err)
	}
	log.Printf("network loaded: %d stops", graph.Len())
	snap := network.NewSnapshot(graph, tariff)

	switch *mode {
	case "serve":
		lib.StartServer(config.Config, snap)
		lib.HandleGracefulShutdown()
	case "oneshot":
		pt, err := fare.ParsePassengerType(*passenger)
		if err != nil {
			panic(err)
		}
		pm, err := fare.ParsePaymentMethod(*payment)
		if err != nil {
			panic(err)
		}
		req := planner.TripRequest{
			Origin:        &geo.Coordinate{Latitude: *originLat, Longitude: *originLon},
			Destination:   &geo.Coordinate{Latitude: *destLat, Longitude: *destLon},
			PassengerType: pt,
			PaymentMethod: pm,
		}
		if *balance >= 0 {
			req.Balance = balance
		}
		p := planner.New(snap, planner.Options{
			TaxiSpeedKmh:    config.Config.Planner.TaxiSpeedKmh,
			WalkingSpeedKmh: config.Config.Planner.WalkingSpeedKmh,
		})
		set, err := p.PlanTrip(req)
		if set == nil && err != nil {
			panic(err)
		}
		if *sortBy == "duration" {
			set.SortByDuration()
		}
		buf, merr := json.MarshalIndent(set, "", "  ")
		if merr != nil {
			panic(merr)
		}
		fmt.Println(string(buf))
		if err != nil {
			log.Printf("warning: %v", err)
		}
	default:
		panic("unknown mode")
	}
}
