package util

import (
	"fmt"
	"os/exec"
	"runtime"
)

// fallbackBrowsers Linux 下 xdg-open 失败时依次尝试
var fallbackBrowsers = []string{"google-chrome", "firefox", "chromium-browser", "sensible-browser"}

// browserCommand 返回当前平台打开 url 的命令
func browserCommand(goos, url string) (string, []string) {
	switch goos {
	case "windows":
		// rundll32 在 Windows 7 到 11 上都可用
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		return "open", []string{url}
	default:
		return "xdg-open", []string{url}
	}
}

// OpenBrowser 用系统默认浏览器打开 url，失败时按平台降级
func OpenBrowser(url string) error {
	name, args := browserCommand(runtime.GOOS, url)
	err := exec.Command(name, args...).Start()
	if err == nil {
		return nil
	}

	switch runtime.GOOS {
	case "windows":
		if exec.Command("explorer", url).Start() == nil {
			return nil
		}
	case "linux":
		for _, browser := range fallbackBrowsers {
			if exec.Command(browser, url).Start() == nil {
				return nil
			}
		}
	}
	return fmt.Errorf("open browser %s: %w", url, err)
}
