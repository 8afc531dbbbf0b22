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

	"github.com/ariefcatur/go-supplychain/internal/admin"
	"github.com/ariefcatur/go-supplychain/internal/audit"
	"github.com/ariefcatur/go-supplychain/internal/config"
	"github.com/ariefcatur/go-supplychain/internal/httpx"
	"github.com/ariefcatur/go-supplychain/internal/mongox"
	"github.com/ariefcatur/go-supplychain/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load("admin", ":7005")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := &admin.Handler{
		Client: admin.NewClient(cfg.RetailerURL, cfg.SupplierURL),
	}

	if cfg.RedisAddr != "" {
		rdb := redisx.New(cfg.RedisAddr)
		defer rdb.Close()
		h.Redis = rdb
	}

	// the activity feed reads what cmd/audit writes
	client, err := mongox.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Printf("mongo connect: %v (activity feed disabled)", err)
	} else {
		defer client.Disconnect(context.Background())
		h.Activity = &audit.Repo{C: client.Database(cfg.EventsDB).Collection("events")}
	}

	router := httpx.NewRouter()
	h.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("admin listening at %s", cfg.HTTPAddr)
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
}
