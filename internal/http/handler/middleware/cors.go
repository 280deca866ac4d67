package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

const corsMaxAge = 600

type CORSMiddleware struct {
	cors *cors.Cors
}

// NewCORSMiddleware allows browser clients from the given origins. "*" allows any origin.
func NewCORSMiddleware(allowedOrigins []string) *CORSMiddleware {
	return &CORSMiddleware{
		cors: cors.New(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{
				http.MethodHead,
				http.MethodGet,
				http.MethodPost,
				http.MethodPut,
				http.MethodDelete,
			},
			AllowedHeaders: []string{"Content-Type", AuthTokenHeader, RequestIDHeader},
			ExposedHeaders: []string{RequestIDHeader},
			MaxAge:         corsMaxAge,
		}),
	}
}

// CORS answers preflight requests itself and adds the allow headers to the rest.
func (m *CORSMiddleware) CORS(next http.Handler) http.Handler {
	return m.cors.Handler(next)
}
