package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"lumak-be/internal/auth"
	"lumak-be/internal/customer"
	"lumak-be/internal/expense"
	"lumak-be/internal/loyalty"
	"lumak-be/internal/order"
	"lumak-be/internal/packages"
	"lumak-be/internal/product"
	"lumak-be/internal/reports"
	"lumak-be/internal/utils"
)

type dataEnvelope struct {
	Data any `json:"data"`
}

type errorEnvelope struct {
	Message string `json:"message"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dataEnvelope{Data: data})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorEnvelope{Message: message})
}

// writeError maps domain errors onto HTTP statuses. Validation failures
// are 400, missing records 404, state conflicts 409, auth failures 401.
// Anything unrecognized is a 500 with a generic body so internals do not
// leak to the client.
func writeError(w http.ResponseWriter, err error) {
	writeMessage(w, statusFor(err), messageFor(err))
}

func statusFor(err error) int {
	var (
		stockErr      *order.InsufficientStockError
		pointsErr     *loyalty.InsufficientPointsError
		transitionErr *order.InvalidTransitionError
	)

	switch {
	case errors.As(err, &stockErr),
		errors.As(err, &pointsErr),
		errors.As(err, &transitionErr),
		errors.Is(err, product.ErrProductInUse):
		return http.StatusConflict

	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, packages.ErrPackageNotFound),
		errors.Is(err, customer.ErrCustomerNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, expense.ErrExpenseNotFound):
		return http.StatusNotFound

	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidLineRef),
		errors.Is(err, order.ErrInvalidDiscount),
		errors.Is(err, order.ErrInvalidDelivery),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrCustomerRequired),
		errors.Is(err, product.ErrInvalidName),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidStock),
		errors.Is(err, packages.ErrInvalidQuantity),
		errors.Is(err, customer.ErrMissingIdentity),
		errors.Is(err, loyalty.ErrSelfTransfer),
		errors.Is(err, loyalty.ErrInvalidAmount),
		errors.Is(err, expense.ErrInvalidAmount),
		errors.Is(err, expense.ErrMissingDescription),
		errors.Is(err, expense.ErrInvalidMonth),
		errors.Is(err, reports.ErrInvalidYear),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func messageFor(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}

var errBadRequest = errors.New("malformed request")

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errBadRequest
	}
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := utils.ParseID(raw)
	if err != nil {
		return 0, errBadRequest
	}
	return id, nil
}
