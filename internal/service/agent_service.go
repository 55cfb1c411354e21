package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/cv-reviewer/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

type AgentServiceInterface interface {
	Configured() bool
	Run(ctx context.Context, prompt string) (string, error)
}

// AgentService is a thin relay to an external review agent runtime. It only
// forwards the prompt and picks the answer text out of the response; all
// analysis happens before this call.
type AgentService struct {
	baseURL string
	apiKey  string
	appName string
	client  *resty.Client
}

func NewAgentService() *AgentService {
	agentConfig := config.LoadAgentConfig()
	return &AgentService{
		baseURL: agentConfig.BaseURL,
		apiKey:  agentConfig.APIKey,
		appName: agentConfig.AppName,
		client:  resty.New(),
	}
}

func (s *AgentService) Configured() bool {
	return s.baseURL != ""
}

func (s *AgentService) Run(ctx context.Context, prompt string) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("agent runtime not configured")
	}

	payload := map[string]any{
		"app_name":   s.appName,
		"user_id":    "api",
		"session_id": uuid.NewString(),
		"new_message": map[string]any{
			"role": "user",
			"parts": []map[string]string{
				{"text": prompt},
			},
		},
	}

	req := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if s.apiKey != "" {
		req.SetHeader("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := req.Post(s.baseURL + "/run")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("agent runtime returned %s", resp.Status())
	}

	body := resp.String()
	if text := gjson.Get(body, "content.parts.0.text").String(); text != "" {
		return text, nil
	}
	// beberapa runtime membungkus jawaban dalam daftar event
	if text := gjson.Get(body, "0.content.parts.0.text").String(); text != "" {
		return text, nil
	}
	if body == "" {
		return "", fmt.Errorf("no response from agent runtime")
	}
	return body, nil
}
