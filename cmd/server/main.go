package main

import (
	"log"

	"github.com/shashiranjanraj/bistro/internal/server"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
