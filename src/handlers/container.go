package handlers

import (
	"github.com/filadigital/painel-senhas/src/services"
	ws "github.com/filadigital/painel-senhas/src/websocket"
)

type Handlers struct {
	Senha  *SenhaHandler
	Painel *PainelHandler
	WS     *WSHandler
}

func New(svc *services.Services, hub *ws.Hub) *Handlers {
	return &Handlers{
		Senha:  NewSenhaHandler(svc.Senha),
		Painel: NewPainelHandler(svc.Painel),
		WS:     NewWSHandler(hub, svc.Senha),
	}
}
