package main

import (
	"net/http"
	"strings"
)

type sessionResponse struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Users  []userResponse `json:"users"`
}

type userResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type sessionRequest struct {
	Name string `json:"name"`
}

// sessionGET reports the active user and the users available for switching.
func (app *application) sessionGET(w http.ResponseWriter, r *http.Request) {
	user, err := app.profileService.CurrentUser(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	users, err := app.profileService.Users(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	resp := sessionResponse{UserID: user.ID, Name: user.Name}
	for _, u := range users {
		resp.Users = append(resp.Users, userResponse{ID: u.ID, Name: u.Name})
	}
	app.writeJSON(w, r, http.StatusOK, resp)
}

// sessionPOST switches the active user by name, creating the user on first
// use, and stores the choice in the session.
func (app *application) sessionPOST(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		app.clientError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	userID, err := app.profileService.SwitchUser(r.Context(), name)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.sessionManager.Put(r.Context(), sessionKeyUserID, userID)

	app.writeJSON(w, r, http.StatusOK, sessionResponse{UserID: userID, Name: name})
}
