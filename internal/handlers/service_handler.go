package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/nowshad-islam-dev/skipq-api/internal/httpresp"
	ucService "github.com/nowshad-islam-dev/skipq-api/internal/usecase/service"
	"github.com/nowshad-islam-dev/skipq-api/internal/validators"
)

type ServiceHandler struct {
	create *ucService.CreateService
	list   *ucService.ListServices
	get    *ucService.GetService
	logger *slog.Logger
}

func NewServiceHandler(
	create *ucService.CreateService,
	list *ucService.ListServices,
	get *ucService.GetService,
	logger *slog.Logger,
) *ServiceHandler {
	return &ServiceHandler{
		create: create,
		list:   list,
		get:    get,
		logger: logger.With("component", "service_handler"),
	}
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.list.Execute(c.Request.Context())
	if err != nil {
		respond(c, h.logger, err, nil)
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	service, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		respond(c, h.logger, err, nil)
		return
	}
	httpresp.OK(c, service)
}

// Create accepts multipart fields plus files under "photos".
func (h *ServiceHandler) Create(c *gin.Context) {
	var req validators.NewService
	if err := bind(c, &req); err != nil {
		bindFailed(c, err)
		return
	}

	photos, err := formFiles(c, "photos")
	if err != nil {
		bindFailed(c, err)
		return
	}

	service, err := h.create.Execute(c.Request.Context(), ucService.CreateServiceInput{
		Fields: req,
		Photos: photos,
	})
	if err != nil {
		respond(c, h.logger, err, nil)
		return
	}
	httpresp.OK(c, service)
}
