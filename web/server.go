package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server routes requests to the handlers the modules register. It is
// the single place that knows about the router: the modules only see
// the RegisterHandler interface.
type Server struct {
	router *gin.Engine
}

func NewServer(env string) *Server {
	if env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, PATCH, POST, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Accept-Language, Authorization, Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
		}
		c.Next()
	})

	// Unknown route
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"message": "Page not found"})
	})

	// Ping
	router.GET("/notedly/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]string{"data": "ok"})
	})

	return &Server{
		router: router,
	}
}

// RegisterHandler mounts a handler on a route. The path parameters are
// stashed in the request context under "params" for the decoders.
func (s *Server) RegisterHandler(path, method string, handler http.Handler) {
	s.router.Handle(method, path, func(c *gin.Context) {
		params := make(map[string]string)
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}

		ctx := context.WithValue(c.Request.Context(), "params", params)
		handler.ServeHTTP(c.Writer, c.Request.WithContext(ctx))
	})
}

// Run starts the server on addr, blocking until it stops.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
