package rest

import "net/http"

type healthResponse struct {
	Message string `json:"message"`
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
		return
	}
}

func (that *handlers) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(that.logger, w, http.StatusOK, healthResponse{Message: "Server is up!"})
}
