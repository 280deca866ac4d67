package middleware_test

import (
	"blockvault/internal/http/handler/middleware"
	"blockvault/internal/http/handler/middleware/fake"
	"errors"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		rec        *httptest.ResponseRecorder
		req        *http.Request
		seenID     string
		nextCalled bool
		next       http.HandlerFunc
	)

	BeforeEach(func() {
		rec = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/blocks", nil)
		seenID = ""
		nextCalled = false
		next = func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			seenID = middleware.RequestIDFrom(r.Context())
			w.WriteHeader(http.StatusTeapot)
		}
	})

	Describe("RequestID", func() {
		It("assigns an id when none is sent", func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(rec, req)

			Expect(seenID).NotTo(BeEmpty())
			Expect(rec.Header().Get(middleware.RequestIDHeader)).To(Equal(seenID))
		})

		It("keeps the caller's id", func() {
			req.Header.Set(middleware.RequestIDHeader, "abc-123")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(rec, req)

			Expect(seenID).To(Equal("abc-123"))
		})
	})

	Describe("CORS", func() {
		When("any origin is allowed", func() {
			var handler http.Handler

			BeforeEach(func() {
				handler = middleware.NewCORSMiddleware([]string{"*"}).CORS(next)
			})

			It("marks cross-origin reads as allowed", func() {
				req.Header.Set("Origin", "http://localhost:3000")
				handler.ServeHTTP(rec, req)

				Expect(nextCalled).To(BeTrue())
				Expect(rec.Code).To(Equal(http.StatusTeapot))
				Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
				Expect(rec.Header().Get("Access-Control-Expose-Headers")).To(Equal(middleware.RequestIDHeader))
			})

			It("answers a preflight without calling the next handler", func() {
				req = httptest.NewRequest(http.MethodOptions, "/ingest", nil)
				req.Header.Set("Origin", "http://localhost:3000")
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
				req.Header.Set("Access-Control-Request-Headers", "auth_token,content-type")
				handler.ServeHTTP(rec, req)

				Expect(nextCalled).To(BeFalse())
				Expect(rec.Code).To(Equal(http.StatusNoContent))
				Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
				Expect(rec.Header().Get("Access-Control-Allow-Methods")).To(Equal(http.MethodPost))
				Expect(rec.Header().Get("Access-Control-Allow-Headers")).To(Equal("auth_token,content-type"))
				Expect(rec.Header().Get("Access-Control-Max-Age")).To(Equal("600"))
			})

			It("leaves same-origin requests alone", func() {
				handler.ServeHTTP(rec, req)

				Expect(nextCalled).To(BeTrue())
				Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
			})
		})

		When("origins are listed", func() {
			var handler http.Handler

			BeforeEach(func() {
				handler = middleware.NewCORSMiddleware([]string{"http://explorer.local"}).CORS(next)
			})

			It("echoes an allowed origin", func() {
				req.Header.Set("Origin", "http://explorer.local")
				handler.ServeHTTP(rec, req)

				Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("http://explorer.local"))
			})

			It("does not allow other origins", func() {
				req.Header.Set("Origin", "http://elsewhere.local")
				handler.ServeHTTP(rec, req)

				Expect(nextCalled).To(BeTrue())
				Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
			})
		})
	})

	Describe("Logging", func() {
		It("passes the response through", func() {
			middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(next).ServeHTTP(rec, req)

			Expect(nextCalled).To(BeTrue())
			Expect(rec.Code).To(Equal(http.StatusTeapot))
		})
	})

	Describe("Instrument", func() {
		var observer *fake.HTTPObserver

		BeforeEach(func() {
			observer = new(fake.HTTPObserver)
		})

		It("reports the matched route and status", func() {
			mux := http.NewServeMux()
			mux.HandleFunc("GET /blocks/{number}", next)
			req = httptest.NewRequest(http.MethodGet, "/blocks/42", nil)

			middleware.NewMetricsMiddleware(observer).Instrument(mux).ServeHTTP(rec, req)

			Expect(observer.ObserveHTTPCallCount()).To(Equal(1))
			method, route, status, _ := observer.ObserveHTTPArgsForCall(0)
			Expect(method).To(Equal(http.MethodGet))
			Expect(route).To(Equal("GET /blocks/{number}"))
			Expect(status).To(Equal(http.StatusTeapot))
		})
	})

	Describe("RequireToken", func() {
		var (
			authorizer *fake.Authorizer
			handler    http.HandlerFunc
		)

		BeforeEach(func() {
			authorizer = new(fake.Authorizer)
			handler = middleware.NewAuthMiddleware(zap.NewNop().Sugar(), authorizer).RequireToken(next)
		})

		When("no token is sent", func() {
			It("rejects the request", func() {
				handler.ServeHTTP(rec, req)

				Expect(rec.Code).To(Equal(http.StatusUnauthorized))
				Expect(nextCalled).To(BeFalse())
				Expect(authorizer.AuthorizeCallCount()).To(Equal(0))
			})
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				req.Header.Set(middleware.AuthTokenHeader, "bad")
				authorizer.AuthorizeReturns(errors.New("token is not valid"))
			})

			It("rejects the request", func() {
				handler.ServeHTTP(rec, req)

				Expect(rec.Code).To(Equal(http.StatusUnauthorized))
				Expect(nextCalled).To(BeFalse())
				Expect(authorizer.AuthorizeArgsForCall(0)).To(Equal("bad"))
			})
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				req.Header.Set(middleware.AuthTokenHeader, "good")
			})

			It("calls the next handler", func() {
				handler.ServeHTTP(rec, req)

				Expect(nextCalled).To(BeTrue())
				Expect(rec.Code).To(Equal(http.StatusTeapot))
			})
		})
	})
})
