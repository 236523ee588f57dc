package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 客户端配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Game   GameConfig   `yaml:"game"`
	Sound  SoundConfig  `yaml:"sound"`
}

// ServerConfig 游戏服务器地址
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}

// GameConfig 游戏渲染配置
type GameConfig struct {
	TrackWidth  int `yaml:"track_width"`  // 赛道宽度（像素）
	AnimationMs int `yaml:"animation_ms"` // 位置更新后的动画窗口（毫秒）
}

// SoundConfig 音效配置
type SoundConfig struct {
	Muted bool `yaml:"muted"`
}

// URL 返回 WebSocket 连接地址
func (c *ServerConfig) URL() string {
	return fmt.Sprintf("ws://%s:%d%s", c.Host, c.Port, c.Path)
}

// AnimationWindow 返回动画窗口时长
func (c *GameConfig) AnimationWindow() time.Duration {
	return time.Duration(c.AnimationMs) * time.Millisecond
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Path == "" {
		cfg.Server.Path = "/"
	}
	if cfg.Game.TrackWidth == 0 {
		cfg.Game.TrackWidth = 600
	}
	if cfg.Game.AnimationMs == 0 {
		cfg.Game.AnimationMs = 600
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
			Path: "/",
		},
		Game: GameConfig{
			TrackWidth:  600,
			AnimationMs: 600,
		},
	}
}
