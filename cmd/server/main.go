// @title         resume-builder API
// @version       1.0
// @description   Form-and-result frontend for the resume generation service.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}
