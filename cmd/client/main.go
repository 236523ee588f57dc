package main

import (
	"flag"
	"log"
	"net"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/config"
	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/logger"
	"github.com/Jenny-2005/relationship-mirror-game-frontend/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/client.yaml", "配置文件路径")
	serverAddr := flag.String("server", "", "服务器地址 (host:port)，覆盖配置文件")
	flag.Parse()

	// 加载配置，失败时退回默认值
	cfg, err := config.Load(*configPath)
	if err != nil {
		cfg = config.Default()
	}

	if *serverAddr != "" {
		host, portStr, err := net.SplitHostPort(*serverAddr)
		if err != nil {
			log.Fatalf("无效的服务器地址 %q: %v", *serverAddr, err)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			log.Fatalf("无效的端口 %q: %v", portStr, err)
		}
		cfg.Server.Host = host
		cfg.Server.Port = port
	}

	if err := logger.Init(); err != nil {
		log.Printf("日志初始化失败: %v", err)
	}
	defer logger.Close()

	model := ui.NewRaceModel(cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("启动客户端时出错: %v", err)
	}
}
