package routes

import (
	"github.com/filadigital/painel-senhas/src/handlers"
	"github.com/filadigital/painel-senhas/src/repositories"
	"github.com/filadigital/painel-senhas/src/services"
	ws "github.com/filadigital/painel-senhas/src/websocket"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, hub *ws.Hub) {

	// init
	repos_instance := repositories.New(db)
	txr := repositories.NewTxRunner(db)
	services_instance := services.New(repos_instance, txr, hub)
	handlers_instance := handlers.New(services_instance, hub)

	// setup
	r.GET("/estado", handlers_instance.Senha.Estado)
	r.POST("/gerar-senha", handlers_instance.Senha.GerarSenha)
	r.POST("/chamar-proxima", handlers_instance.Senha.ChamarProxima)
	r.POST("/finalizar-atendimento", handlers_instance.Senha.FinalizarAtendimento)
	r.POST("/reencaminhar-senha", handlers_instance.Senha.ReencaminharSenha)

	r.GET("/servicos", handlers_instance.Painel.ListarServicos)
	r.GET("/guiches", handlers_instance.Painel.ListarGuiches)

	r.GET("/ws", handlers_instance.WS.Conectar)
}
