package main

import (
	"log"

	"github.com/NVIDIA/cuda-toolkit-locator/pkg/server"
)

func main() {
	if err := server.Run(); err != nil {
		log.Fatal(err)
	}
}
