package response

import "github.com/filadigital/painel-senhas/src/dto"

type ErrorResponse struct {
	Erro string `json:"erro"`
}

type MessageResponse struct {
	Mensagem string `json:"mensagem"`
}

type GerarSenhaResponse struct {
	Mensagem string `json:"mensagem"`
	Numero   string `json:"numero"`
}

type ChamadaResponse struct {
	Mensagem string       `json:"mensagem"`
	Senha    dto.SenhaDTO `json:"senha"`
}
