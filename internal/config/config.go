package config

import (
	"sync"
)

const (
	DefaultEndpoint     string = "http://localhost:11434/api/chat"
	DefaultModel        string = "llama3.2:3b"
	DefaultSystemPrompt string = "You are a helpful writing assistant. Improve the following text while maintaining the author's style. Give only the improved text."

	DefaultWindowWidth  float32 = 1400
	DefaultWindowHeight float32 = 800
)

type WindowConfig struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

type InferenceConfig struct {
	Endpoint     string `json:"endpoint"`
	Model        string `json:"model"`
	SystemPrompt string `json:"system_prompt"`
}

// Config holds the fixed settings of the program. Nothing is read from
// disk or the environment; every value comes from NewDefaultConfig.
type Config struct {
	mu sync.RWMutex

	Window    WindowConfig    `json:"window"`
	Inference InferenceConfig `json:"inference"`
}

func (c *Config) GetEndpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Inference.Endpoint
}

func (c *Config) GetModel() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Inference.Model
}

func (c *Config) GetSystemPrompt() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Inference.SystemPrompt
}

func (c *Config) GetWindowSize() (float32, float32) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Window.Width, c.Window.Height
}

func NewDefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{Width: DefaultWindowWidth, Height: DefaultWindowHeight},
		Inference: InferenceConfig{
			Endpoint:     DefaultEndpoint,
			Model:        DefaultModel,
			SystemPrompt: DefaultSystemPrompt,
		},
	}
}
