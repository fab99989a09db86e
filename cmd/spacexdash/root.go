package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"spacexdash/internal/config"
	"spacexdash/internal/logging"
	"spacexdash/internal/parser"
	"spacexdash/internal/server"
	"spacexdash/internal/store"
	"spacexdash/internal/util"
)

var rootFlags struct {
	config string
	host   string
	port   int
	debug  bool
	data   string
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.config, "config", "", "config file (.toml/.yaml); defaults to config.toml next to the executable")
	f.StringVar(&rootFlags.data, "data", "", "launch dataset (.csv or .xlsx)")
	f.StringVar(&rootFlags.host, "host", "", "listen host")
	f.IntVar(&rootFlags.port, "port", 0, "listen port")
	f.BoolVar(&rootFlags.debug, "debug", false, "debug mode (gin debug + debug logging)")
}

// loadConfig 默认值 -> 配置文件 -> 环境变量 -> 命令行参数
func loadConfig(cmd *cobra.Command) (*config.AppConfig, config.LoadConfigInfo, error) {
	cfg, info, err := config.LoadConfigWithInfo(rootFlags.config)
	if err != nil {
		return nil, info, err
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Server.Host = rootFlags.host
	}
	if flags.Changed("port") {
		cfg.Server.Port = rootFlags.port
	}
	if flags.Changed("debug") {
		cfg.Server.Debug = rootFlags.debug
	}
	if flags.Changed("data") {
		cfg.Data.Path = rootFlags.data
	}
	if cfg.Server.Debug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, info, err
	}
	logging.Init(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format, cmd.ErrOrStderr())
	return cfg, info, nil
}

func loadStore(cfg *config.AppConfig) (*store.Store, error) {
	s, err := store.Load(cfg.Data.Path, parser.Options{Sheet: cfg.Data.Sheet})
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return s, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, info, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New("main")
	if info.FileLoaded {
		log.Info("config loaded", "path", info.Path)
	} else {
		log.Info("no config file, using defaults", "path", info.Path)
	}

	s, err := loadStore(cfg)
	if err != nil {
		return err
	}
	log.Info("dataset loaded", "source", s.Source(), "records", s.Count(), "sites", len(s.Sites()))

	srv, err := server.NewServer(cfg, s)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "==========================================")
	fmt.Fprintf(out, "  %s\n", cfg.Dashboard.Title)
	fmt.Fprintln(out, "==========================================")
	fmt.Fprintf(out, "访问地址: %s\n", cfg.BrowserURL())
	fmt.Fprintln(out, "按 Ctrl+C 停止服务...")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.OpenBrowser {
		go func() {
			if err := util.OpenBrowser(cfg.BrowserURL()); err != nil {
				log.Warn("无法自动打开浏览器，请手动访问", "url", cfg.BrowserURL(), "error", err)
			}
		}()
	}

	if err := srv.Run(ctx); err != nil {
		return err
	}
	if ctx.Err() == context.Canceled {
		fmt.Fprintln(out, "服务已停止")
	}
	return nil
}
