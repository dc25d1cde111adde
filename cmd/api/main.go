package main

import (
	_ "patoz_consumer/docs"
	"patoz_consumer/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PATOZ Consumer Service API
// @version         1.0
// @description     Device fleet, repair lifecycle, estimate catalog and store finder for the PATOZ consumer app.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
