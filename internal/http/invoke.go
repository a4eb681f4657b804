package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/ATenderholt/rainbow-filedata/internal/domain"
	"github.com/ATenderholt/rainbow-filedata/internal/settings"
	"github.com/go-chi/chi/v5"
)

const (
	invocationTypeHeader = "X-Amz-Invocation-Type"
	functionErrorHeader  = "X-Amz-Function-Error"

	eventInvocation = "Event"
)

type NotificationHandler interface {
	Handle(ctx context.Context, notification domain.Notification) (domain.Response, error)
}

// functionError mirrors the payload Lambda returns for an unhandled error.
type functionError struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorType    string `json:"errorType"`
}

// InvokeHandler serves the subset of the Lambda Invoke API needed to deliver
// bucket notifications to the function while running locally.
type InvokeHandler struct {
	cfg     *settings.Config
	handler NotificationHandler
}

func NewInvokeHandler(cfg *settings.Config, handler NotificationHandler) InvokeHandler {
	return InvokeHandler{
		cfg:     cfg,
		handler: handler,
	}
}

// CheckFunction rejects invocations for any function other than the
// configured one. Both plain names and ARNs are accepted.
func (h InvokeHandler) CheckFunction(next http.Handler) http.Handler {
	f := func(w http.ResponseWriter, request *http.Request) {
		// the SDK escapes the ':' separators of an ARN
		name, err := url.PathUnescape(chi.URLParam(request, "function"))
		if err != nil {
			logger.Errorf("Unable to decode function name: %v", err)
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"Type":    "User",
				"message": "Invalid function name: " + err.Error(),
			})
			return
		}

		if name != h.cfg.FunctionName && !strings.HasSuffix(name, ":function:"+h.cfg.FunctionName) {
			logger.Warnf("Received invocation for unknown function %s", name)
			writeJSON(w, http.StatusNotFound, map[string]string{
				"Type":    "User",
				"message": "Function not found: " + name,
			})
			return
		}

		next.ServeHTTP(w, request)
	}

	return http.HandlerFunc(f)
}

func (h InvokeHandler) Invoke(w http.ResponseWriter, request *http.Request) {
	var notification domain.Notification
	err := json.NewDecoder(request.Body).Decode(&notification)
	if err != nil {
		logger.Errorf("Unable to decode notification: %v", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"Type":    "User",
			"message": "Could not parse request body into json: " + err.Error(),
		})
		return
	}

	response, err := h.handler.Handle(request.Context(), notification)

	if request.Header.Get(invocationTypeHeader) == eventInvocation {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	if err != nil {
		w.Header().Set(functionErrorHeader, "Unhandled")
		writeJSON(w, http.StatusOK, functionError{
			ErrorMessage: err.Error(),
			ErrorType:    errorType(err),
		})
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func errorType(err error) string {
	t := reflect.TypeOf(err)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Name() == "" {
		return "error"
	}

	return t.Name()
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(value)
	if err != nil {
		logger.Errorf("Unable to write response %+v: %v", value, err)
	}
}
