package services

import "errors"

var (
	// ErrServicoNaoInformado: issue request without a service name.
	ErrServicoNaoInformado = errors.New("serviço não especificado")
	// ErrFilaVazia: call-next with no AGUARDANDO ticket.
	ErrFilaVazia = errors.New("a fila está vazia")
	// ErrSemAtendimento: finish/requeue with no CHAMANDO ticket.
	ErrSemAtendimento = errors.New("nenhuma senha em atendimento")
)
