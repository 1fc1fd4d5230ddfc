package main

import (
	"github.com/joho/godotenv"

	"github.com/NVIDIA/cookbook/pkg/cli"
)

func main() {
	_ = godotenv.Load()

	cli.Execute()
}
