package messages

import (
	"net/http"
	"strings"

	"pet-wellness-web/internal/platform/respond"
	"pet-wellness-web/internal/platform/validation"
	"pet-wellness-web/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, gw Gateway, token auth.TokenFunc) {
	r.Route("/messages", func(mr chi.Router) {
		mr.Post("/", sendHandler(gw, token))
		mr.Get("/", listHandler(gw, token))
		mr.Get("/conversations", conversationsHandler(gw, token))
		mr.Put("/read", markReadHandler(gw, token))
	})
}

// sendHandler godoc
// @Summary      Send message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      SendInput  true  "Message"
// @Success      201   {object}  Message
// @Router       /api/messages [post]
func sendHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in SendInput
		if !respond.DecodeJSON(w, r, &in) {
			return
		}
		if err := validation.Struct(in); err != nil {
			respond.Error(w, err)
			return
		}
		m, err := gw.SendMessage(r.Context(), token(r.Context()), in)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, m)
	}
}

// listHandler godoc
// @Summary      Messages with a user
// @Tags         messages
// @Produce      json
// @Param        with  query    string  true  "Other user ID"
// @Success      200   {array}  Message
// @Router       /api/messages [get]
func listHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		with := strings.TrimSpace(r.URL.Query().Get("with"))
		if with == "" {
			respond.Message(w, http.StatusBadRequest, "with is required")
			return
		}
		items, err := gw.ListMessages(r.Context(), token(r.Context()), with)
		if err != nil {
			respond.Error(w, err)
			return
		}
		if items == nil {
			items = []Message{}
		}
		respond.JSON(w, http.StatusOK, items)
	}
}

// conversationsHandler godoc
// @Summary      Conversation list
// @Tags         messages
// @Produce      json
// @Success      200  {array}  Conversation
// @Router       /api/messages/conversations [get]
func conversationsHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := gw.ListConversations(r.Context(), token(r.Context()))
		if err != nil {
			respond.Error(w, err)
			return
		}
		if items == nil {
			items = []Conversation{}
		}
		respond.JSON(w, http.StatusOK, items)
	}
}

// markReadHandler godoc
// @Summary      Mark messages from sender as read
// @Tags         messages
// @Accept       json
// @Param        body  body  MarkReadInput  true  "Sender"
// @Success      204
// @Router       /api/messages/read [put]
func markReadHandler(gw Gateway, token auth.TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in MarkReadInput
		if !respond.DecodeJSON(w, r, &in) {
			return
		}
		if err := validation.Struct(in); err != nil {
			respond.Error(w, err)
			return
		}
		if err := gw.MarkMessagesRead(r.Context(), token(r.Context()), in.Sender); err != nil {
			respond.Error(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
