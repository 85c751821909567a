package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/robostride/website/pkg/notify"
)

var (
	phoneRe = regexp.MustCompile(`^1[3-9]\d{9}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// contactRequest is the submitted contact form payload
type contactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// contactHandler validates a lead and relays it to the configured webhook.
// Leads are not stored, the submission id exists for log correlation only.
func (s *Server) contactHandler(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := req.validate(); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	id := uuid.New().String()
	lead := notify.Lead{Name: req.Name, Phone: req.Phone, Email: req.Email, Message: req.Message}

	if err := s.notifier.Notify(r.Context(), lead); err != nil {
		log.Printf("[ERROR] contact %s: relay failed: %v", id, err)
		renderError(w, r, fmt.Errorf("failed to submit contact request"), http.StatusBadGateway)
		return
	}

	log.Printf("[INFO] contact %s: lead relayed for %s", id, req.Name)
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok", "id": id})
}

func (c *contactRequest) validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Message == "" {
		return fmt.Errorf("message is required")
	}
	if !phoneRe.MatchString(c.Phone) {
		return fmt.Errorf("invalid phone number")
	}
	if c.Email != "" && !emailRe.MatchString(c.Email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
