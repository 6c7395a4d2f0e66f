package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo/internal/session"
	"todo/internal/store"
)

func (s *Server) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	sess, err := s.app.Gate.AttemptLogin(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, SessionResponse{
		Username: sess.User.Username,
		Admin:    sess.User.Admin,
	})
}

func (s *Server) logout(c echo.Context) error {
	if err := s.app.Gate.AttemptLogout(); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) currentSession(c echo.Context) error {
	sess, ok := s.app.Sessions.Current()
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not logged in"})
	}
	return c.JSON(http.StatusOK, SessionResponse{
		Username: sess.User.Username,
		Admin:    sess.User.Admin,
	})
}

func (s *Server) listTasks(c echo.Context) error {
	scope, err := s.app.Sessions.Scope()
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not logged in"})
	}

	filter, err := store.ParseFilter(c.QueryParam("filter"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	tasks := s.app.Store.Filtered(scope, filter)
	if tasks == nil {
		tasks = []store.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}

func (s *Server) createTask(c echo.Context) error {
	sess, ok := s.app.Sessions.Current()
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not logged in"})
	}

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	owner := sess.User.Username
	if req.Owner != "" && req.Owner != sess.User.Username {
		if !sess.User.Admin {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "only an admin can assign tasks to another user"})
		}
		owner = req.Owner
	}

	task, err := s.app.Store.Create(req.Name, owner)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyName), errors.Is(err, store.ErrUnknownOwner):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		}
	}

	return c.JSON(http.StatusCreated, task)
}

func (s *Server) toggleTask(c echo.Context) error {
	scope, err := s.app.Sessions.Scope()
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not logged in"})
	}

	task, status := s.visibleTask(scope, c.Param("id"))
	if status != http.StatusOK {
		return c.JSON(status, ErrorResponse{Message: "task not found"})
	}

	toggled, err := s.app.Store.Toggle(task.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, toggled)
}

func (s *Server) deleteTask(c echo.Context) error {
	scope, err := s.app.Sessions.Scope()
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not logged in"})
	}

	task, status := s.visibleTask(scope, c.Param("id"))
	if status != http.StatusOK {
		return c.JSON(status, ErrorResponse{Message: "task not found"})
	}

	if err := s.app.Store.Delete(task.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listUsers(c echo.Context) error {
	if _, ok := s.app.Sessions.Current(); !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not logged in"})
	}

	users := s.app.Directory.Users()
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = UserResponse{Username: u.Username, Admin: u.Admin}
	}
	return c.JSON(http.StatusOK, out)
}

// visibleTask finds a task by id within the session's scope. Tasks outside
// the scope read as not found so ids do not leak across users.
func (s *Server) visibleTask(scope store.Scope, id string) (store.Task, int) {
	for _, t := range s.app.Store.ListFor(scope) {
		if t.ID == id {
			return t, http.StatusOK
		}
	}
	return store.Task{}, http.StatusNotFound
}
