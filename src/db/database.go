package db

import (
	"fmt"
	"log"

	"github.com/filadigital/painel-senhas/src/config"
	"github.com/filadigital/painel-senhas/src/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	if err := Seed(DB); err != nil {
		log.Fatal("Failed to seed initial data:", err)
	}

	log.Println("Database connected and migrated")
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&models.Servico{},
		&models.Guiche{},
		&models.Usuario{},
		&models.Senha{},
		&models.EventoSenha{},
	)
}

// Seed creates the initial services, counters and operator when the tables
// are empty, matching what displays and kiosks expect on a fresh install.
func Seed(gormDB *gorm.DB) error {
	var count int64

	if err := gormDB.Model(&models.Servico{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		servicos := []models.Servico{
			{Nome: "Atendimento Geral", PrefixoSenha: "A", Ativo: true},
			{Nome: "Atendimento Prioritário", PrefixoSenha: "P", Ativo: true},
		}
		if err := gormDB.Create(&servicos).Error; err != nil {
			return err
		}
		log.Println("Serviços iniciais adicionados ao banco de dados")
	}

	if err := gormDB.Model(&models.Guiche{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		guiches := []models.Guiche{
			{Nome: "Guichê 1", Descricao: "Guichê de Atendimento Principal", IsDisponivel: true},
			{Nome: "Guichê 2", Descricao: "Guichê de Atendimento Prioritário", IsDisponivel: true},
		}
		if err := gormDB.Create(&guiches).Error; err != nil {
			return err
		}
		log.Println("Guichês iniciais adicionados ao banco de dados")
	}

	if err := gormDB.Model(&models.Usuario{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		guicheID := uint(1)
		atendente := models.Usuario{
			Nome:          "Atendente Padrão",
			Login:         "atendente1",
			Tipo:          models.TipoAtendente,
			Ativo:         true,
			GuicheAtualID: &guicheID,
		}
		if err := atendente.SetPassword(config.SenhaInicialAtendente); err != nil {
			return err
		}
		if err := gormDB.Create(&atendente).Error; err != nil {
			return err
		}
		log.Println("Atendente padrão adicionado ao banco de dados")
	}

	return nil
}
