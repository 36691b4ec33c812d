package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/daili-wash/partner-api/internal/config"
	"github.com/daili-wash/partner-api/internal/seed"
)

func main() {
	// CLI flags
	count := flag.Int("count", 0, "Number of orders to generate")
	seedVal := flag.Int64("seed", 0, "PRNG seed (same seed, same fixture)")
	out := flag.String("out", "", "Output file path")
	flag.Parse()

	// Fall back to environment variables
	if *count == 0 {
		if v, err := strconv.Atoi(os.Getenv("SEED_COUNT")); err == nil {
			*count = v
		}
	}
	if *out == "" {
		*out = os.Getenv("SEED_OUT")
	}

	// Fall back to defaults
	if *count == 0 {
		*count = 115
	}
	if *seedVal == 0 {
		*seedVal = 1
	}
	if *out == "" {
		*out = "orders.json"
	}

	cfg := config.Load()
	now := time.Now().In(cfg.Location())

	orders := seed.Generate(*count, *seedVal, now)

	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		log.Fatalf("marshal orders: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}

	log.Printf("Wrote %d orders to %s (seed %d)", len(orders), *out, *seedVal)
}
