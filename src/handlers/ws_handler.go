package handlers

import (
	"log"
	"net/http"

	"github.com/filadigital/painel-senhas/src/services"
	ws "github.com/filadigital/painel-senhas/src/websocket"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub *ws.Hub
	svc *services.SenhaService
}

func NewWSHandler(hub *ws.Hub, svc *services.SenhaService) *WSHandler {
	return &WSHandler{hub: hub, svc: svc}
}

// Conectar upgrades the connection, registers the client and pushes the full
// current state, so displays that reconnect catch up before the next event.
func (h *WSHandler) Conectar(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Failed to upgrade websocket:", err)
		return
	}

	client := ws.NewClient(h.hub, conn)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	estado, err := h.svc.Estado()
	if err != nil {
		log.Printf("[ws] erro ao montar estado inicial: %v", err)
		return
	}
	client.Enviar(services.EventoFilaAtualizada, map[string]any{
		"fila": estado.Fila,
	})
	client.Enviar(services.EventoSenhaChamada, map[string]any{
		"senha_atual":     estado.SenhaAtual,
		"senhas_chamadas": estado.SenhasChamadas,
	})
}
