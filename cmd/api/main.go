package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/xavierca1/site-leads/internal/config"
	"github.com/xavierca1/site-leads/internal/infra/database"
	"github.com/xavierca1/site-leads/internal/infra/http/handlers"
	appmw "github.com/xavierca1/site-leads/internal/infra/http/middleware"
	"github.com/xavierca1/site-leads/internal/infra/integration/kommo"
	"github.com/xavierca1/site-leads/internal/infra/integration/openai"
	"github.com/xavierca1/site-leads/internal/infra/mail"
	"github.com/xavierca1/site-leads/internal/infra/queue"
	"github.com/xavierca1/site-leads/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuração inválida: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Repositório (memória)
	leadRepo := database.NewLeadRepository(time.Now)

	// 2. Notificações
	var (
		mailSender *mail.EmailSender
		alerter    usecase.InternalAlerter
		confirmer  usecase.CustomerConfirmer
	)
	if cfg.MailConfigured() {
		mailSender = mail.NewEmailSender(
			cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass,
			cfg.MailFrom, cfg.TeamEmail, cfg.CompanyName,
		)
		alerter = mailSender
		confirmer = mailSender
	} else {
		log.Println("⚠️ SMTP não configurado: leads serão salvos sem envio de email")
	}

	var crm queue.CRMClient
	if cfg.KommoConfigured() {
		crm = kommo.NewClient(cfg.KommoBaseURL, cfg.KommoToken, cfg.KommoStatusID)
	}

	// 3. Fila opcional: alerta interno passa pelo RabbitMQ e o worker
	// cuida do email e do CRM
	var broker handlers.BrokerStatus
	if cfg.RabbitMQURL != "" && mailSender != nil {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("⚠️ RabbitMQ indisponível, alerta vai direto por email: %v", err)
		} else {
			defer rabbitMQ.Close()
			broker = rabbitMQ
			alerter = queue.NewProducer(rabbitMQ.Ch)

			worker := queue.NewWorker(rabbitMQ.Ch, mailSender, crm)
			go func() {
				if err := worker.Start(ctx, queue.QueueName); err != nil {
					log.Printf("❌ Worker parou: %v", err)
				}
			}()
		}
	}

	coordinator := usecase.NewNotificationCoordinator(alerter, confirmer, appmw.PrometheusRecorder{}, cfg.NotifyTimeout)

	var chatClient usecase.ChatCompleter
	if cfg.OpenAIConfigured() {
		chatClient = openai.NewClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIMaxTokens, cfg.OpenAITemperature)
	}

	// 4. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, coordinator)
	listLeadsUC := usecase.NewListLeadsUseCase(leadRepo)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo)
	statsUC := usecase.NewGetStatsUseCase(leadRepo, time.Now)
	whatsAppUC := usecase.NewWhatsAppLinkUseCase(leadRepo, cfg.WhatsAppNumber)
	chatUC := usecase.NewChatUseCase(chatClient)

	// 5. Handlers + Router
	leadHandler := handlers.NewLeadHandler(createLeadUC, listLeadsUC, updateLeadUC, cfg.LeadRateLimit)
	defer leadHandler.Close()

	router := newRouter(routes{
		Lead:      leadHandler,
		Dashboard: handlers.NewDashboardHandler(statsUC),
		ROI:       handlers.NewROIHandler(),
		WhatsApp:  handlers.NewWhatsAppHandler(whatsAppUC),
		Chat:      handlers.NewChatHandler(chatUC),
		Health: handlers.NewHealthHandler(broker, leadRepo, map[string]bool{
			"smtp":   cfg.MailConfigured(),
			"kommo":  cfg.KommoConfigured(),
			"openai": cfg.OpenAIConfigured(),
		}),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 Servidor rodando na porta %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Erro no servidor HTTP: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ Shutdown forçado: %v", err)
	}
}
