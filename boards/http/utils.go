package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dowlandaiello/notedly/errors"
)

// Server defines the interface to register the http handlers.
type Server interface {
	RegisterHandler(path, method string, f http.Handler)
}

func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	statusCode := http.StatusInternalServerError
	if err, ok := err.(errors.Error); ok {
		statusCode = err.Code()
	}
	w.WriteHeader(statusCode)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}

// pathID extracts an integer path parameter injected by the router.
func pathID(ctx context.Context, name string) (int, error) {
	params := ctx.Value("params").(map[string]string)
	return strconv.Atoi(params[name])
}
