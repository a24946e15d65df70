package main

import (
	_ "oficina_mecanica/docs"
	"oficina_mecanica/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Oficina Mecânica API
// @version         1.0
// @description     Gestão de ordens de serviço de oficina mecânica (clientes, mecânicos, peças, serviços, pagamentos e relatórios) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
