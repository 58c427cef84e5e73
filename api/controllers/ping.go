package controllers

import (
	"net/http"

	"github.com/addisavenue/storefront-backend/api/middleware"
	"github.com/addisavenue/storefront-backend/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"scope": "public", "status": "ok"})
	}
}

func PrivatePing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "private", "status": "ok"}
		if email := middleware.UserEmailFromContext(r.Context()); email != "" {
			payload["email"] = email
		}
		responses.WriteSuccess(w, payload)
	}
}
