package service

import (
	"bytes"
	"context"
	"course_admin_backend/internal/config"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MailService delivers worker invite codes through the external mail
// endpoint. Worker creation depends on this call succeeding first.
type MailService struct {
	config config.MailConfig
	client *http.Client
}

func NewMailService(cfg config.MailConfig) *MailService {
	return &MailService{
		config: cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

type inviteMail struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (s *MailService) SendInvite(ctx context.Context, name, email, code string) error {
	jsonData, err := json.Marshal(inviteMail{Name: name, Email: email, Code: code})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL+"/send-mail", bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mail API error (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
