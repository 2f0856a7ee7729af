package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	intconfig "navetteclub/internal/config"
	intdb "navetteclub/internal/db"
	router "navetteclub/internal/http"
	"navetteclub/internal/http/handlers"
	"navetteclub/internal/jobs"
	"navetteclub/internal/konnect"
	"navetteclub/internal/repositories"
	"navetteclub/internal/services"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	if err := intdb.EnsureSchema(db); err != nil {
		log.Fatalf("Échec de l'initialisation du schéma: %v", err)
	}

	var rdb *redis.Client
	if env.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: env.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("Redis injoignable (%v), badges back-office désactivés", err)
			rdb = nil
		}
	}

	handlers.Configure(env, rdb)

	// Expiration périodique des intentions de paiement en attente.
	payments := services.PaymentService{
		IntentRepo:   repositories.PaymentIntentRepo{},
		CustomerRepo: repositories.CustomerRepo{},
		TransferRepo: repositories.TransferBookingRepo{},
		DisposalRepo: repositories.DisposalBookingRepo{},
		TourBookings: repositories.TourBookingRepo{},
		Gateway:      konnect.NewClient(env.KonnectAPIKey, env.KonnectReceiverWallet, env.KonnectBaseURL, env.BaseURL, env.EURToTNDRate),
	}
	scheduler, err := jobs.Start(payments)
	if err != nil {
		log.Fatalf("Échec du démarrage des tâches planifiées: %v", err)
	}
	defer scheduler.Stop()

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Serveur démarré sur http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Échec du démarrage du serveur: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Arrêt du serveur...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Arrêt du serveur échoué: %v", err)
	}

	log.Println("Serveur arrêté proprement.")
}
