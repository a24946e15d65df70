package routes

import (
	"oficina_mecanica/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers  = "/clientes"
	PathMechanics  = "/mecanicos"
	PathParts      = "/pecas"
	PathServices   = "/servicos"
	PathWorkOrders = "/ordens_servicos"
)

type workshopHandlers struct {
	customers *handlers.CustomerHandler
	mechanics *handlers.MechanicHandler
	parts     *handlers.PartHandler
	services  *handlers.ServiceHandler
	orders    *handlers.WorkOrderHandler
	reports   *handlers.ReportHandler
	payments  *handlers.PaymentHandler
}

func addWorkshopRoutes(rg *gin.RouterGroup, h workshopHandlers) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.customers.Create)
		customers.GET("", h.customers.List)
		customers.GET("/:id", h.customers.GetByID)
		customers.PATCH("/:id", h.customers.Update)
		customers.DELETE("/:id", h.customers.Delete)
	}

	mechanics := rg.Group(PathMechanics)
	{
		mechanics.POST("", h.mechanics.Create)
		mechanics.GET("", h.mechanics.List)
		mechanics.GET("/:id", h.mechanics.GetByID)
		mechanics.PATCH("/:id", h.mechanics.Update)
		mechanics.DELETE("/:id", h.mechanics.Delete)

		// Relatório de produtividade dos mecânicos.
		mechanics.GET("/report", h.reports.MechanicReport)
		mechanics.GET("/reports/download/:filename", h.reports.DownloadReport)
	}

	parts := rg.Group(PathParts)
	{
		parts.POST("", h.parts.Create)
		parts.GET("", h.parts.List)
		parts.GET("/:id", h.parts.GetByID)
		parts.PATCH("/:id", h.parts.Update)
		parts.DELETE("/:id", h.parts.Delete)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", h.services.Create)
		services.GET("", h.services.List)
		services.GET("/:id", h.services.GetByID)
		services.PATCH("/:id", h.services.Update)
		services.DELETE("/:id", h.services.Delete)
	}

	orders := rg.Group(PathWorkOrders)
	{
		orders.POST("", h.orders.Create)
		orders.GET("", h.orders.List)
		orders.GET("/:id", h.orders.GetByID)
		orders.PUT("/:id", h.orders.Update)
		orders.DELETE("/:id", h.orders.Delete)

		orders.POST("/:id/servicos", h.orders.AddService)
		orders.DELETE("/:id/servicos/:servico_id", h.orders.RemoveService)
		orders.POST("/:id/pecas", h.orders.AddPart)
		orders.DELETE("/:id/pecas/:peca_id", h.orders.RemovePart)
		orders.POST("/:id/concluir", h.orders.Conclude)

		orders.POST("/:id/pagamentos", h.payments.CreatePayment)
		orders.GET("/:id/pagamentos", h.payments.GetPayment)
	}
}
