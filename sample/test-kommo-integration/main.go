package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/xavierca1/site-leads/internal/config"
	"github.com/xavierca1/site-leads/internal/entity"
	"github.com/xavierca1/site-leads/internal/infra/integration/kommo"
)

// Cria um lead de teste no Kommo com as credenciais do .env.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuração inválida: %v", err)
	}
	if !cfg.KommoConfigured() {
		log.Fatal("❌ KOMMO_BASE_URL e KOMMO_API_TOKEN devem estar configurados no .env")
	}

	client := kommo.NewClient(cfg.KommoBaseURL, cfg.KommoToken, cfg.KommoStatusID)

	lead := entity.NewLead(
		"Joao Teste da Silva",
		"joao.teste@email.com",
		"+5561999990000",
		"Empresa Teste",
		"Lead de teste da integração",
		"sample",
	)
	lead.ID = time.Now().UnixMilli()

	fmt.Println("🔄 Criando lead no Kommo...")
	fmt.Printf("   Nome: %s\n", lead.Name)
	fmt.Printf("   Telefone: %s\n", lead.Phone)
	fmt.Printf("   Email: %s\n", lead.Email)
	fmt.Printf("   Empresa: %s\n\n", lead.Company)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	leadID, err := client.CreateLead(ctx, *lead)
	if err != nil {
		log.Fatalf("Erro ao criar lead no Kommo: %v", err)
	}

	fmt.Printf("Lead criado com sucesso no Kommo! ID #%d\n", leadID)
	if account := os.Getenv("KOMMO_ACCOUNT_ID"); account != "" {
		fmt.Printf(" Link: https://%s.kommo.com/leads/detail/%d\n", account, leadID)
	}
}
