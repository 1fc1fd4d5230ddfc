package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/NVIDIA/cookbook/pkg/api"
)

func main() {
	_ = godotenv.Load()

	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
