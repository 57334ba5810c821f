package handler

import (
	"time"

	"github.com/deppfellow/devmatch/internal/middleware"
	"github.com/deppfellow/devmatch/internal/server"
	"github.com/deppfellow/devmatch/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// Handler holds the dependencies shared by every concrete handler.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// request constrains PReq to a pointer to Req that can validate itself, so
// that Handle can allocate a fresh Req for every request.
type request[Req any] interface {
	*Req
	validation.Validatable
}

// phase reports the outcome of one step of a request (bind or handler) to
// the log and, when present, the New Relic transaction.
type phase struct {
	name   string
	txn    *newrelic.Transaction
	logger *zerolog.Logger
	start  time.Time
}

func startPhase(name string, txn *newrelic.Transaction, logger *zerolog.Logger) *phase {
	return &phase{name: name, txn: txn, logger: logger, start: time.Now()}
}

func (p *phase) end(err error) time.Duration {
	elapsed := time.Since(p.start)

	status := "success"
	if err != nil {
		status = "failed"
	}

	if p.txn != nil {
		if err != nil {
			p.txn.NoticeError(nrpkgerrors.Wrap(err))
		}
		p.txn.AddAttribute(p.name+".status", status)
		p.txn.AddAttribute(p.name+".duration_ms", elapsed.Milliseconds())
	}

	if err != nil {
		p.logger.Debug().Err(err).Dur(p.name+"_duration", elapsed).Msg(p.name + " failed")
	}
	return elapsed
}

// Handle adapts a typed endpoint, which receives a bound and validated
// request and returns the response body, into an echo.HandlerFunc. Each
// request is bound into its own zero Req, so nothing leaks between requests.
//
//	r.PATCH("/developers/:id", handler.Handle(h, h.Update, http.StatusOK))
func Handle[Req any, Res any, PReq request[Req]](
	h Handler,
	handler func(c echo.Context, req PReq) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		route := c.Path()

		txn := newrelic.FromContext(c.Request().Context())
		if txn != nil {
			txn.AddAttribute("handler.name", route)
		}

		logger := middleware.GetLogger(c).With().Str("route", route).Logger()
		logger.Debug().Msg("handling request")

		req := PReq(new(Req))

		bind := startPhase("validation", txn, &logger)
		err := validation.BindAndValidate(c, req)
		bindDuration := bind.end(err)
		if err != nil {
			return err
		}

		run := startPhase("handler", txn, &logger)
		result, err := handler(c, req)
		runDuration := run.end(err)

		if txn != nil {
			txn.AddAttribute("total.duration_ms", time.Since(start).Milliseconds())
		}
		if err != nil {
			return err
		}

		logger.Debug().
			Dur("validation_duration", bindDuration).
			Dur("handler_duration", runDuration).
			Dur("total_duration", time.Since(start)).
			Msg("request completed")

		return c.JSON(status, result)
	}
}
