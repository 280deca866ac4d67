package middleware

import "time"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Authorizer . Authorizer
type Authorizer interface {
	Authorize(token string) error
}

//counterfeiter:generate -o fake -fake-name HTTPObserver . HTTPObserver
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}
