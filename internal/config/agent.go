package config

import (
	"os"
	"sync"
)

// AgentConfig points at the external review agent runtime. When BaseURL is
// empty the service synthesizes narrative feedback through Gemini directly.
type AgentConfig struct {
	BaseURL string
	APIKey  string
	AppName string
}

var (
	agentConfig *AgentConfig
	agentOnce   sync.Once
)

func LoadAgentConfig() *AgentConfig {
	agentOnce.Do(func() {
		appName := os.Getenv("AGENT_APP_NAME")
		if appName == "" {
			appName = "cv_review_agent"
		}
		agentConfig = &AgentConfig{
			BaseURL: os.Getenv("AGENT_BASE_URL"),
			APIKey:  os.Getenv("AGENT_API_KEY"),
			AppName: appName,
		}
	})
	return agentConfig
}
