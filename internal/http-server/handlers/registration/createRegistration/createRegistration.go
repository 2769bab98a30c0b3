package createRegistration

import (
	"context"
	"log/slog"
	"net/http"

	"churchEvents/internal/lib/api/apierr"
	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/models"
	"churchEvents/internal/services/registration"

	"github.com/go-chi/render"
)

const (
	msgCreated    = "Inscrição realizada com sucesso!"
	msgWaitlisted = "Evento lotado. Sua inscrição foi adicionada à lista de espera."
	msgFailed     = "Erro ao realizar inscrição. Tente novamente."
)

type Response struct {
	response.Response
	Message      string               `json:"message"`
	Waitlisted   bool                 `json:"waitlisted"`
	Registration *models.Registration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationCreator
type RegistrationCreator interface {
	Create(ctx context.Context, in registration.CreateInput) (*models.Registration, error)
}

func New(log *slog.Logger, creator RegistrationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.createRegistration.New"

		log := log.With(slog.String("op", op))

		var req registration.CreateInput

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			apierr.BadRequest(w, r, log, err, "failed to decode request body")
			return
		}

		log = log.With(slog.String("event_id", req.EventID))

		reg, err := creator.Create(r.Context(), req)
		if err != nil {
			apierr.Render(w, r, log, err, msgFailed)
			return
		}

		log.Info("registration created",
			slog.String("registration_id", reg.ID),
			slog.String("status", string(reg.Status)),
		)

		responseOK(w, r, reg)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, reg *models.Registration) {
	waitlisted := reg.Status == models.StatusWaitlist

	msg := msgCreated
	if waitlisted {
		msg = msgWaitlisted
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, Response{
		Response:     response.OK(),
		Message:      msg,
		Waitlisted:   waitlisted,
		Registration: reg,
	})
}
