package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix 环境变量前缀
const EnvPrefix = "SPACEXDASH_"

// DefaultFileName 默认配置文件名（位于可执行文件同目录）
const DefaultFileName = "config.toml"

// AppConfig 应用配置
type AppConfig struct {
	Server    ServerConfig    `toml:"server" yaml:"server" envPrefix:"SERVER_"`
	Data      DataConfig      `toml:"data" yaml:"data" envPrefix:"DATA_"`
	Dashboard DashboardConfig `toml:"dashboard" yaml:"dashboard" envPrefix:"DASHBOARD_"`
	Session   SessionConfig   `toml:"session" yaml:"session" envPrefix:"SESSION_"`
	Log       LogConfig       `toml:"log" yaml:"log" envPrefix:"LOG_"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host        string `toml:"host" yaml:"host" env:"HOST"`
	Port        int    `toml:"port" yaml:"port" env:"PORT"`
	Debug       bool   `toml:"debug" yaml:"debug" env:"DEBUG"`
	OpenBrowser bool   `toml:"open_browser" yaml:"open_browser" env:"OPEN_BROWSER"`
}

// DataConfig 数据集配置
type DataConfig struct {
	Path  string `toml:"path" yaml:"path" env:"PATH"`
	Sheet string `toml:"sheet" yaml:"sheet" env:"SHEET"` // 仅 xlsx 生效
}

// DashboardConfig 页面控件配置
type DashboardConfig struct {
	Title    string `toml:"title" yaml:"title" env:"TITLE"`
	AllLabel string `toml:"all_label" yaml:"all_label" env:"ALL_LABEL"`
	// Sites 下拉框站点；为空时使用数据集中出现的站点
	Sites      []string `toml:"sites" yaml:"sites" env:"SITES" envSeparator:","`
	SliderMin  float64  `toml:"slider_min" yaml:"slider_min" env:"SLIDER_MIN"`
	SliderMax  float64  `toml:"slider_max" yaml:"slider_max" env:"SLIDER_MAX"`
	SliderStep float64  `toml:"slider_step" yaml:"slider_step" env:"SLIDER_STEP"`
	MarkStep   float64  `toml:"mark_step" yaml:"mark_step" env:"MARK_STEP"`
}

// SessionConfig 会话配置
type SessionConfig struct {
	TTL Duration `toml:"ttl" yaml:"ttl" env:"TTL"`
}

// Duration 可从 "30m" 这类字符串解析的时长（TOML/YAML/环境变量通用）
type Duration struct {
	time.Duration
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText 实现 encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `toml:"level" yaml:"level" env:"LEVEL"`
	Format string `toml:"format" yaml:"format" env:"FORMAT"` // text/json
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path       string
	FileLoaded bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8050,
			Debug:       false,
			OpenBrowser: false,
		},
		Data: DataConfig{
			Path: "spacex_launch_dash.csv",
		},
		Dashboard: DashboardConfig{
			Title:      "SpaceX Launch Records Dashboard",
			AllLabel:   "All Sites",
			SliderMin:  0,
			SliderMax:  10000,
			SliderStep: 1000,
			MarkStep:   2000,
		},
		Session: SessionConfig{
			TTL: Duration{30 * time.Minute},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultPath 默认配置文件路径
func DefaultPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return filepath.Join(exeDir, DefaultFileName)
}

// LoadConfigWithInfo 加载配置：默认值 -> 配置文件 -> 环境变量
//
// path 为空时使用可执行文件同目录下的 config.toml；文件不存在时只使用默认值。
func LoadConfigWithInfo(path string) (*AppConfig, LoadConfigInfo, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	info := LoadConfigInfo{Path: path}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(path, data, cfg); err != nil {
			return nil, info, fmt.Errorf("parse config %s: %w", path, err)
		}
		info.FileLoaded = true
	case os.IsNotExist(err) && !explicit:
		// 配置文件不存在，使用默认配置
	default:
		return nil, info, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := ApplyEnv(cfg, nil); err != nil {
		return nil, info, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, info, err
	}
	return cfg, info, nil
}

func decode(path string, data []byte, cfg *AppConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return toml.Unmarshal(data, cfg)
	}
}

// ApplyEnv 使用 SPACEXDASH_ 前缀的环境变量覆盖配置；environ 为 nil 时读取进程环境
func ApplyEnv(cfg *AppConfig, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate 校验配置
func (c *AppConfig) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if strings.TrimSpace(c.Data.Path) == "" {
		return fmt.Errorf("data path is required")
	}
	d := c.Dashboard
	if d.SliderMax <= d.SliderMin {
		return fmt.Errorf("slider_max (%v) must be greater than slider_min (%v)", d.SliderMax, d.SliderMin)
	}
	if d.SliderStep <= 0 || d.MarkStep <= 0 {
		return fmt.Errorf("slider_step and mark_step must be positive")
	}
	if c.Session.TTL.Duration <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}
	return nil
}

// Addr 监听地址
func (c *AppConfig) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// BrowserURL 本机访问地址（监听所有网卡时使用 localhost）
func (c *AppConfig) BrowserURL() string {
	host := c.Server.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(c.Server.Port))
}
