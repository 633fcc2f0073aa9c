package handlers

import (
	"errors"
	"net/http"

	"github.com/filadigital/painel-senhas/src/dto"
	"github.com/filadigital/painel-senhas/src/response"
	"github.com/filadigital/painel-senhas/src/services"
	"github.com/gin-gonic/gin"
)

type SenhaHandler struct {
	svc *services.SenhaService
}

func NewSenhaHandler(svc *services.SenhaService) *SenhaHandler {
	return &SenhaHandler{svc: svc}
}

func (h *SenhaHandler) Estado(c *gin.Context) {
	estado, err := h.svc.Estado()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Erro: "Erro ao buscar o estado inicial: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, estado)
}

func (h *SenhaHandler) GerarSenha(c *gin.Context) {
	var input dto.GerarSenhaDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Erro: "Corpo da requisição inválido"})
		return
	}

	senha, err := h.svc.GerarSenha(input)
	if err != nil {
		if errors.Is(err, services.ErrServicoNaoInformado) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Erro: "Serviço não especificado"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Erro: "Ocorreu um erro ao gerar a senha: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.GerarSenhaResponse{
		Mensagem: "Senha gerada com sucesso",
		Numero:   senha.SenhaCompleta,
	})
}

func (h *SenhaHandler) ChamarProxima(c *gin.Context) {
	var input dto.ChamarProximaDTO
	// Body is optional; callers may omit guiche/atendente to use defaults.
	_ = c.ShouldBindJSON(&input)

	senha, err := h.svc.ChamarProxima(input)
	if err != nil {
		if errors.Is(err, services.ErrFilaVazia) {
			c.JSON(http.StatusNotFound, response.MessageResponse{Mensagem: "A fila está vazia"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Erro: "Ocorreu um erro ao chamar a próxima senha: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.ChamadaResponse{
		Mensagem: "Próxima senha chamada",
		Senha:    dto.NewSenhaDTO(*senha),
	})
}

func (h *SenhaHandler) FinalizarAtendimento(c *gin.Context) {
	if err := h.svc.FinalizarAtendimento(); err != nil {
		if errors.Is(err, services.ErrSemAtendimento) {
			c.JSON(http.StatusNotFound, response.MessageResponse{Mensagem: "Nenhuma senha em atendimento"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Erro: "Ocorreu um erro ao finalizar o atendimento: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Mensagem: "Atendimento finalizado com sucesso"})
}

func (h *SenhaHandler) ReencaminharSenha(c *gin.Context) {
	if err := h.svc.ReencaminharSenha(); err != nil {
		if errors.Is(err, services.ErrSemAtendimento) {
			c.JSON(http.StatusNotFound, response.MessageResponse{Mensagem: "Nenhuma senha em atendimento"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Erro: "Ocorreu um erro ao reencaminhar a senha: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Mensagem: "Senha reencaminhada para a fila"})
}
