package main

import (
	"go-sniper/config"
	"go-sniper/server"
)

func main() {
	server.Start(config.Load())
}
