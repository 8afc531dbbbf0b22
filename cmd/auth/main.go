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

	"github.com/ariefcatur/go-supplychain/internal/auth"
	"github.com/ariefcatur/go-supplychain/internal/config"
	"github.com/ariefcatur/go-supplychain/internal/httpx"
	"github.com/ariefcatur/go-supplychain/internal/mongox"
	"github.com/ariefcatur/go-supplychain/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load("auth", ":7000")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := mongox.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer client.Disconnect(context.Background())

	var codes auth.CodeStore
	if cfg.RedisAddr != "" {
		rdb := redisx.New(cfg.RedisAddr)
		defer rdb.Close()
		codes = &auth.RedisCodeStore{R: rdb}
	} else {
		mem := auth.NewMemCodeStore()
		go mem.Sweep(ctx, time.Minute)
		codes = mem
	}

	svc := &auth.Service{
		Store: &auth.Repo{C: client.Database(cfg.MongoDB).Collection("users")},
		Codes: codes,
	}

	router := httpx.NewRouter()
	h := &auth.Handler{Service: svc}
	h.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("auth listening at %s", cfg.HTTPAddr)
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
