package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nvales/watchdex/internal/api/response"
	"github.com/nvales/watchdex/internal/domain"
	"github.com/rs/zerolog/log"
)

// respondError maps service errors to HTTP responses. Anything outside the
// known taxonomy is logged and surfaced as a fixed 500 message so internals
// never leak to the client.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		response.BadRequest(w, domain.ErrEmailTaken.Error())
	case errors.Is(err, domain.ErrInvalidUpdate):
		response.BadRequest(w, domain.ErrInvalidUpdate.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		response.Unauthorized(w, domain.ErrInvalidCredentials.Error())
	case errors.Is(err, domain.ErrInvalidRefreshToken):
		response.Unauthorized(w, domain.ErrInvalidRefreshToken.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		response.Unauthorized(w, domain.ErrUserNotFound.Error())
	case errors.Is(err, domain.ErrWatchNotFound):
		response.NotFound(w, domain.ErrWatchNotFound.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		response.InternalError(w, "Internal server error")
	}
}

// validationMessage flattens validator errors to a single string so the
// error envelope always carries a string, whatever the failure class.
// ValidationErrors follows struct field order, so the message is stable.
func validationMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err.Error()
	}

	e := validationErrors[0]
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "lte":
		return e.Field() + " must be at most " + e.Param()
	default:
		return e.Field() + " failed validation on " + e.Tag()
	}
}
