package httpserver

import (
	"context"
	"fmt"
)

// Run starts the HTTP server and blocks until it stops.
func (srv *HTTPServer) Run() error {
	addr := fmt.Sprintf(":%d", srv.port)
	srv.l.Infof(context.Background(), "HTTP server listening on %s", addr)
	return srv.gin.Run(addr)
}
