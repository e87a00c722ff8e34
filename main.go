package main

import (
	"log"
	"os"

	"lb-front/config"
	"lb-front/global"
	"lb-front/utils"
	"lb-front/web"

	flag "github.com/spf13/pflag"
	lg "github.com/yatori-dev/yatori-go-core/utils/log"
)

func main() {
	configPath := flag.StringP("config", "c", "config.yaml", "配置文件路径")
	flag.Parse()

	//配置文件不存在时生成默认配置
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		if err := config.WriteDefaultConfig(*configPath); err != nil {
			log.Fatal("生成默认配置失败: ", err)
		}
	}
	setting, err := config.ReadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	utils.ConsoleInit(setting.Setting.BasicSetting) //初始化日志

	app, err := global.OpenApp(setting)
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	lg.Print(lg.INFO, lg.Green, "lb-front 接口地址: ", app.Client.BaseURL())
	if err := web.ServiceInit(app); err != nil {
		lg.Print(lg.INFO, lg.BoldRed, "服务退出: ", err.Error())
	}
}
