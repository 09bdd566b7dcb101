package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"noteflow/internal/config"
	"noteflow/internal/serverapp"
)

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load("noteflow_config.yml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.ApplyEnv()

	app, err := serverapp.NewApp(serverapp.Options{
		Config:        cfg,
		DataDir:       cfg.Server.DataDir,
		StaticDir:     cfg.Server.StaticDir,
		UseDiskStatic: serverapp.UseDiskStaticByEnv(),
		Logger:        log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}
	defer app.Close()

	log.Printf("listening on http://localhost%s", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, app.Handler))
}
