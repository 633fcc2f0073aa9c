package websocket

import (
	"encoding/json"
	"log"
)

// Envelope is the wire format of every realtime message.
type Envelope struct {
	Evento string `json:"evento"`
	Dados  any    `json:"dados"`
}

// Hub fans events out to every connected display. Registration, removal and
// broadcast all go through the Run loop, which owns the client set.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Printf("[ws] cliente %s conectado (%d ativos)", client.ID, len(h.clients))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("[ws] cliente %s desconectado (%d ativos)", client.ID, len(h.clients))
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// Slow or dead subscriber: drop it rather than block the
					// broadcast. It re-syncs with a fresh /estado on reconnect.
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Publicar broadcasts one event to all connected clients. Fire-and-forget:
// errors are logged, never returned to the triggering operation.
func (h *Hub) Publicar(evento string, dados any) {
	msg, err := json.Marshal(Envelope{Evento: evento, Dados: dados})
	if err != nil {
		log.Printf("[ws] erro ao serializar evento %s: %v", evento, err)
		return
	}
	h.broadcast <- msg
}
