package main

import (
	"gotix-api/core/logger"
	"gotix-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
	}
}
