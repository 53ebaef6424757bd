package handlers

import (
	"net/http"

	"github.com/unrolled/render"
	"github.com/vastra-store/vastra/app/apperrors"
)

// All responses share the {success, message?, data fields...} envelope.

func respondSuccess(rnd *render.Render, w http.ResponseWriter, status int, message string, data map[string]interface{}) {
	payload := map[string]interface{}{"success": true}
	if message != "" {
		payload["message"] = message
	}
	for k, v := range data {
		payload[k] = v
	}
	_ = rnd.JSON(w, status, payload)
}

func respondError(rnd *render.Render, w http.ResponseWriter, err error) {
	_ = rnd.JSON(w, apperrors.StatusCode(err), map[string]interface{}{
		"success": false,
		"message": apperrors.Message(err),
	})
}
