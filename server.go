package jsonxml

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/formbridge/json-to-xml/config"
)

var (
	xmlServer  *http.Server
	docxServer *http.Server
)

// NewXMLServiceMux routes the JSON-to-XML service.
func NewXMLServiceMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", handleXMLServiceRoot)
	mux.HandleFunc("/health", handleXMLServiceHealth)
	mux.HandleFunc("/convert-json-to-xml", handleConvertJSONToXML)
	return mux
}

// NewDocxServiceMux routes the JSON-to-DOCX service.
func NewDocxServiceMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", handleDocxServiceRoot)
	mux.HandleFunc("/health", handleDocxServiceHealth)
	mux.HandleFunc("/convert-json-to-docx/", handleConvertJSONToDocx)
	return mux
}

// StartServers starts both conversion services on their configured ports.
func StartServers() {
	xmlServer = newServer(config.Config.Server.XMLPort, NewXMLServiceMux())
	docxServer = newServer(config.Config.Server.DocxPort, NewDocxServiceMux())
	go serve("xml", xmlServer)
	go serve("docx", docxServer)
	log.Printf("xml service listening on %s", xmlServer.Addr)
	log.Printf("docx service listening on %s", docxServer.Addr)
}

func newServer(port int, mux *http.ServeMux) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func serve(name string, s *http.Server) {
	if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("%s server error: %v", name, err)
	}
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM, then drains both servers.
func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, s := range []*http.Server{xmlServer, docxServer} {
		if s == nil {
			continue
		}
		if err := s.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		}
	}
	log.Printf("servers shut down")
}
