package main

import (
	"os"
	"time"

	_ "imoveis_xpto/docs"
	"imoveis_xpto/internal/adapter/http/routes"
	"imoveis_xpto/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           Rental Management API
// @version         1.0
// @description     Property-rental management (apartments, contracts, payments, users) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	routes.Run(config.Load())
}
