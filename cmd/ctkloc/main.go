package main

import (
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/cli"
)

func main() {
	cli.Run()
}
