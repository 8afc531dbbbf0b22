package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ariefcatur/go-supplychain/internal/config"
	"github.com/ariefcatur/go-supplychain/internal/events"
	"github.com/ariefcatur/go-supplychain/internal/httpx"
	"github.com/ariefcatur/go-supplychain/internal/kafkax"
	"github.com/ariefcatur/go-supplychain/internal/mongox"
	"github.com/ariefcatur/go-supplychain/internal/retailer"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load("retailer", ":7001")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := mongox.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer client.Disconnect(context.Background())

	var prod *kafkax.Producer
	if len(cfg.KafkaBrokers) > 0 {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, events.TopicLifecycle, 1024)
		prod.Start(ctx)
	}

	svc := &retailer.Service{
		Store:       &retailer.Repo{C: client.Database(cfg.MongoDB).Collection("retailer_orders")},
		Notifier:    httpx.NewNotifier(),
		Events:      &events.Publisher{Producer: prod, Service: cfg.ServiceName},
		SupplierURL: cfg.SupplierURL,
	}

	router := httpx.NewRouter()
	h := &retailer.Handler{Service: svc}
	h.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("retailer listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	if prod != nil {
		prod.Close()
		cancel()
		prod.WaitClosed()
	}
}
