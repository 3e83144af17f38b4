package ports

import (
	"context"

	"github.com/bnema/gamelan-harmony/internal/domain"
)

type Severity string

const (
	SeverityDefault     Severity = "default"
	SeveritySuccess     Severity = "success"
	SeverityDestructive Severity = "destructive"
)

// Notifier is a fire-and-forget toast surface.
type Notifier interface {
	Notify(ctx context.Context, message string, severity Severity)
}

type Route string

const (
	RouteHome         Route = "/"
	RouteLogin        Route = "/login"
	RouteRegister     Route = "/register"
	RouteCollection   Route = "/koleksi"
	RouteConsultation Route = "/konsultasi"
	RouteProfile      Route = "/profile"
	RouteSettings     Route = "/settings"
	RouteHistory      Route = "/history"
)

type Navigator interface {
	GoTo(ctx context.Context, route Route)
}

type DestinationCatalog interface {
	List() []domain.Destination
}
