package handlers

import (
	"net/http"

	"github.com/filadigital/painel-senhas/src/response"
	"github.com/filadigital/painel-senhas/src/services"
	"github.com/gin-gonic/gin"
)

type PainelHandler struct {
	svc *services.PainelService
}

func NewPainelHandler(svc *services.PainelService) *PainelHandler {
	return &PainelHandler{svc: svc}
}

func (h *PainelHandler) ListarServicos(c *gin.Context) {
	servicos, err := h.svc.ListarServicosAtivos()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Erro: "Erro ao listar serviços: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, servicos)
}

func (h *PainelHandler) ListarGuiches(c *gin.Context) {
	guiches, err := h.svc.ListarGuiches()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Erro: "Erro ao listar guichês: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, guiches)
}
