package login

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"churchEvents/internal/lib/api/apierr"
	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/lib/logger/sl"
	"churchEvents/internal/lib/validate"
	"churchEvents/internal/services/auth"

	"github.com/go-chi/render"
)

type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Response struct {
	response.Response
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Authenticator
type Authenticator interface {
	Login(email, password string) (string, time.Time, error)
}

func New(log *slog.Logger, authenticator Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log := log.With(slog.String("op", op))

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			apierr.BadRequest(w, r, log, err, "failed to decode request body")
			return
		}

		if fields := validate.Struct(req); len(fields) > 0 {
			log.Info("invalid login request")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(fields))
			return
		}

		token, expiresAt, err := authenticator.Login(req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				log.Warn("login failed", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Email ou senha inválidos"))
				return
			}

			apierr.Render(w, r, log, err, "Erro ao realizar login")
			return
		}

		log.Info("admin logged in")

		render.JSON(w, r, Response{
			Response:  response.OK(),
			Token:     token,
			ExpiresAt: expiresAt,
		})
	}
}
