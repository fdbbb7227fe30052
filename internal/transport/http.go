package transport

import (
	"net/http"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// NewHTTPHandler mounts the RPC server for plain HTTP at "/", WebSocket at
// "/ws", and the Prometheus registry at "/metrics". An empty origins list
// allows any origin.
func NewHTTPHandler(server *rpc.Server, origins []string) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	mux := http.NewServeMux()
	mux.Handle("/", server)
	mux.Handle("/ws", server.WebsocketHandler(origins))
	mux.Handle("/metrics", promhttp.Handler())

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodPost, http.MethodGet},
		AllowedHeaders: []string{"*"},
	}).Handler(mux)
}
