package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type userPayload struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type authResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    userPayload `json:"user"`
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Task service is running",
	})
}

func (s *HTTPServer) handleSignup(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, user, err := s.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "user_id", user.ID)

	writeJSON(w, http.StatusCreated, authResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    userPayload{ID: user.ID, Email: user.Email},
	})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, user, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   token,
		User:    userPayload{ID: user.ID, Email: user.Email},
	})
}

func (s *HTTPServer) handleListTasks(w http.ResponseWriter, r *http.Request) {

	claims := claimsFromContext(r.Context())

	tasks, err := s.tasks.List(r.Context(), claims.UserID)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (s *HTTPServer) handleCreateTask(w http.ResponseWriter, r *http.Request) {

	claims := claimsFromContext(r.Context())

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := s.tasks.Create(r.Context(), claims.UserID, req.Title, req.Description)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func (s *HTTPServer) handleUpdateTask(w http.ResponseWriter, r *http.Request) {

	claims := claimsFromContext(r.Context())

	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := s.tasks.Update(r.Context(), claims.UserID, taskID, req.Title, req.Description, req.Status)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (s *HTTPServer) handleDeleteTask(w http.ResponseWriter, r *http.Request) {

	claims := claimsFromContext(r.Context())

	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	if err := s.tasks.Delete(r.Context(), claims.UserID, taskID); err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}
