package handlers

import (
	"net/http"

	"github.com/dawid-walter/basketo-shopper-order/internal/models"
	"github.com/dawid-walter/basketo-shopper-order/internal/services"
	"github.com/dawid-walter/basketo-shopper-order/internal/views"
)

// ContactPageHandler - форма обращения в поддержку
func ContactPageHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(w, r)
		if !ok {
			return
		}
		render(w, http.StatusOK, views.PageContact, views.ContactPage{
			Layout: layout(r, store, "Contact Support"),
			Topics: models.ContactTopics,
		})
	})
}

// SendContactHandler - отправка обращения; при ошибке форма показывается с введёнными данными
func SendContactHandler(contact services.ContactService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(w, r)
		if !ok {
			return
		}
		subject := r.FormValue("subject")
		message := r.FormValue("message")
		if err := contact.Send(r.Context(), store.Email(), subject, message); err != nil {
			render(w, errorStatus(err), views.PageContact, views.ContactPage{
				Layout:  layout(r, store, "Contact Support"),
				Topics:  models.ContactTopics,
				Subject: subject,
				Message: message,
				Error:   errorMessage(err, msgContactFailed),
			})
			return
		}
		if err := store.SetFlash(r.Context(), msgContactReceived); err != nil {
			saveFailed(w, err)
			return
		}
		redirect(w, r, contactPath)
	})
}
