//go:build windows

package utils

import (
	lg "github.com/yatori-dev/yatori-go-core/utils/log"
	"golang.org/x/sys/windows/registry"
)

// setVirtualTerminalLevel 开启 Windows 控制台的 ANSI 颜色支持
func setVirtualTerminalLevel() {
	key, _, err := registry.CreateKey(registry.CURRENT_USER, `Console`, registry.SET_VALUE)
	if err != nil {
		lg.Print(lg.INFO, lg.Red, "打开注册表 Console 失败", err.Error())
		return
	}
	defer key.Close()

	// VirtualTerminalLevel = 1 (DWORD)
	if err = key.SetDWordValue("VirtualTerminalLevel", 1); err != nil {
		lg.Print(lg.INFO, lg.Red, "设置注册表 Console/VirtualTerminalLevel = 1 失败", err.Error())
	}
}
