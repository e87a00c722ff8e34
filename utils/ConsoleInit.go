package utils

import (
	"lb-front/config"

	lg "github.com/yatori-dev/yatori-go-core/utils/log"
)

// ConsoleInit 初始化控制台与日志配置
func ConsoleInit(basic config.BasicSetting) {
	setVirtualTerminalLevel()
	lg.LogInit(lg.StringToLOGLEVEL(basic.LogLevel), basic.LogOutFileSw == 1, basic.ColorLog, basic.LogDir)
}
