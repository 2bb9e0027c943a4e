package respond

import (
	"encoding/json"
	"net/http"
)

// Helpers compartidos para el envelope JSON de la API.
// Antes cada módulo duplicaba su writeJSON; con ocho módulos ya conviene
// el helper común.
//
// Convención:
//   éxito  => { "success": true, ...payload }  (2xx)
//   error  => { "error": "...", "details"?: ... }  (4xx/5xx)

// JSON escribe v tal cual con el status dado.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Success mergea payload con success=true al tope del objeto.
func Success(w http.ResponseWriter, status int, payload map[string]any) {
	out := make(map[string]any, len(payload)+1)
	out["success"] = true
	for k, v := range payload {
		if k == "success" {
			continue
		}
		out[k] = v
	}
	JSON(w, status, out)
}

// OK es Success con 200 y sin payload extra.
func OK(w http.ResponseWriter) {
	Success(w, http.StatusOK, nil)
}

// Error escribe el envelope de error. details es opcional (nil => omitido).
func Error(w http.ResponseWriter, status int, msg string, details any) {
	body := map[string]any{"error": msg}
	if details != nil {
		body["details"] = details
	}
	JSON(w, status, body)
}
