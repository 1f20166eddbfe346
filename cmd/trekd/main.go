//go:generate swag init -g internal/trek/http/router.go -d ../../ -o ../../api/trek --parseDependency

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/BishowDevkota/trekking-company/internal/trek/app"
	"github.com/joho/godotenv"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s\n\n%s", os.Args[0], app.Usage())
	}
	flag.Parse()

	// A .env file is optional; the real environment always wins.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
