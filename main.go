package main

import (
	"log"
	"net/http"

	"noteflow/internal/config"
	"noteflow/internal/serverapp"
)

// Dev entrypoint: fixed port, disk static so asset edits show up on reload.
// The production binary lives in cmd/server.
const addr = ":8383"

func main() {
	cfg := config.Default()
	cfg.Server.Addr = addr

	app, err := serverapp.NewApp(serverapp.Options{
		Config:        cfg,
		UseDiskStatic: true,
		Logger:        log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}
	defer app.Close()

	log.Printf("noteflow dev server on http://localhost%s", addr)
	log.Fatal(http.ListenAndServe(addr, app.Handler))
}
