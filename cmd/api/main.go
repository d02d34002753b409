package main

import (
	_ "enviroflow/docs"
	"enviroflow/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Quote Ingestion API
// @version         1.0
// @description     Normalizes quoting-service payloads into flat line tables and loads them into the warehouse.

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
