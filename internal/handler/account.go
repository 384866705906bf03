package handler

import (
    "context"  // provides context with cancellation for service calls
    "errors"   // errors.Is/As for mapping domain errors to statuses
    "net/http" // HTTP status codes and primitives
    "time"     // timeouts for service calls

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/iliyamo/user-account-service/internal/middleware" // bearer token extraction
    "github.com/iliyamo/user-account-service/internal/service"    // account orchestration
)

// AccountHandler bundles dependencies for the account endpoints.
type AccountHandler struct {
	Svc *service.AccountService
}

func NewAccountHandler(svc *service.AccountService) *AccountHandler {
	return &AccountHandler{Svc: svc}
}

// ----- DTOs -----

type phoneDTO struct {
	Number      int64  `json:"number"`
	CityCode    int    `json:"citycode"`
	CountryCode string `json:"contrycode"`
}

type signUpReq struct {
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Name     string     `json:"name"`
	Phones   []phoneDTO `json:"phones"`
}

// SignUp: create an account and return its view with a fresh token.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var req signUpReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse(http.StatusBadRequest, "Malformed request body"))
	}

	phones := make([]service.PhoneInput, 0, len(req.Phones))
	for _, p := range req.Phones {
		phones = append(phones, service.PhoneInput{
			Number:      p.Number,
			CityCode:    p.CityCode,
			CountryCode: p.CountryCode,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	view, err := h.Svc.CreateAccount(ctx, req.Email, req.Password, req.Name, phones)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, view)
}

// Login: authenticate the presented bearer token and return the refreshed view.
func (h *AccountHandler) Login(c echo.Context) error {
	token, _ := c.Get(middleware.BearerTokenKey).(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	view, err := h.Svc.Login(ctx, token)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// writeServiceError maps domain errors onto the outward status contract:
// validation -> 400 (one entry per field), duplicate -> 409, invalid
// credential / not found -> 404, anything unrecognized -> generic 500
// with no internal detail leaked.
func writeServiceError(c echo.Context, err error) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		details := make([]ErrorDetail, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, newErrorDetail(http.StatusBadRequest, f.Message))
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: details})
	case errors.Is(err, service.ErrDuplicateAccount):
		return c.JSON(http.StatusConflict, NewErrorResponse(http.StatusConflict, err.Error()))
	case errors.Is(err, service.ErrInvalidCredential), errors.Is(err, service.ErrAccountNotFound):
		return c.JSON(http.StatusNotFound, NewErrorResponse(http.StatusNotFound, err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(http.StatusInternalServerError, "Internal server error"))
	}
}
