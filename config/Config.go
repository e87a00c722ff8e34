package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL     = "/api"
	DefaultOrigin      = "http://127.0.0.1:3000"
	DefaultTimeout     = 10000 //毫秒
	DefaultTokenKey    = "token"
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 3000
	DefaultProxyTarget = "http://127.0.0.1:8080"
	DefaultDBPath      = "lb-front.db"
	DefaultAssetsDir   = "./assets/web"

	// BaseURLEnv 与前端构建时的环境变量同名
	BaseURLEnv = "VITE_API_BASE_URL"
)

type JSONDataForConfig struct {
	Setting Setting `json:"setting" yaml:"setting"`
}

type BasicSetting struct {
	ColorLog     int    `json:"colorLog" yaml:"colorLog" mapstructure:"colorLog"`             //是否为彩色日志，0为关闭，1为开启
	LogOutFileSw int    `json:"logOutFileSw" yaml:"logOutFileSw" mapstructure:"logOutFileSw"` //是否输出日志文件
	LogLevel     string `json:"logLevel" yaml:"logLevel" mapstructure:"logLevel"`             //日志等级，默认INFO
	LogDir       string `json:"logDir" yaml:"logDir" mapstructure:"logDir"`
}

type ApiSetting struct {
	BaseUrl  string `json:"baseUrl" yaml:"baseUrl" mapstructure:"baseUrl"`    //接口前缀，可为相对路径
	Origin   string `json:"origin" yaml:"origin" mapstructure:"origin"`       //相对前缀时拼接的站点地址
	Timeout  int    `json:"timeout" yaml:"timeout" mapstructure:"timeout"`    //请求超时，毫秒
	TokenKey string `json:"tokenKey" yaml:"tokenKey" mapstructure:"tokenKey"` //token在本地存储中的key
}

type ServerSetting struct {
	Host        string `json:"host" yaml:"host" mapstructure:"host"`
	Port        int    `json:"port" yaml:"port" mapstructure:"port"`
	ProxyTarget string `json:"proxyTarget" yaml:"proxyTarget" mapstructure:"proxyTarget"` // /api/ 代理目标
	AssetsDir   string `json:"assetsDir" yaml:"assetsDir" mapstructure:"assetsDir"`       //前端构建产物目录
	DBPath      string `json:"dbPath" yaml:"dbPath" mapstructure:"dbPath"`
}

type EmailInform struct {
	Sw       int      `json:"sw" yaml:"sw" mapstructure:"sw"`
	SMTPHost string   `json:"smtpHost" yaml:"SMTPHost" mapstructure:"SMTPHost"`
	SMTPPort int      `json:"smtpPort" yaml:"SMTPPort" mapstructure:"SMTPPort"`
	UserName string   `json:"userName" yaml:"userName" mapstructure:"userName"`
	Password string   `json:"password" yaml:"password" mapstructure:"password"`
	ToEmails []string `json:"toEmails" yaml:"toEmails" mapstructure:"toEmails"`
}

type Setting struct {
	BasicSetting  BasicSetting  `json:"basicSetting" yaml:"basicSetting" mapstructure:"basicSetting"`
	ApiSetting    ApiSetting    `json:"apiSetting" yaml:"apiSetting" mapstructure:"apiSetting"`
	ServerSetting ServerSetting `json:"serverSetting" yaml:"serverSetting" mapstructure:"serverSetting"`
	EmailInform   EmailInform   `json:"emailInform" yaml:"emailInform" mapstructure:"emailInform"`
}

// DefaultConfig 默认配置
func DefaultConfig() JSONDataForConfig {
	setConfig := JSONDataForConfig{}
	setConfig.Setting.BasicSetting.ColorLog = 1
	setConfig.Setting.BasicSetting.LogOutFileSw = 0
	setConfig.Setting.BasicSetting.LogLevel = "INFO"
	setConfig.Setting.BasicSetting.LogDir = "./assets/log"

	setConfig.Setting.ApiSetting.BaseUrl = DefaultBaseURL
	setConfig.Setting.ApiSetting.Origin = DefaultOrigin
	setConfig.Setting.ApiSetting.Timeout = DefaultTimeout
	setConfig.Setting.ApiSetting.TokenKey = DefaultTokenKey

	setConfig.Setting.ServerSetting.Host = DefaultHost
	setConfig.Setting.ServerSetting.Port = DefaultPort
	setConfig.Setting.ServerSetting.ProxyTarget = DefaultProxyTarget
	setConfig.Setting.ServerSetting.AssetsDir = DefaultAssetsDir
	setConfig.Setting.ServerSetting.DBPath = DefaultDBPath

	setConfig.Setting.EmailInform.SMTPPort = 465
	return setConfig
}

// WriteDefaultConfig 配置文件不存在时生成默认配置
func WriteDefaultConfig(filePath string) error {
	setConfig := DefaultConfig()
	data, err := yaml.Marshal(&setConfig)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(filePath, data, 0644)
}

// ReadConfig 读取yaml配置文件，未填写的字段使用默认值
func ReadConfig(filePath string) (JSONDataForConfig, error) {
	var configJson JSONDataForConfig
	v := viper.New()
	v.SetConfigFile(filePath)
	v.SetConfigType("yaml")
	setDefaults(v)
	//环境变量覆盖接口前缀
	if err := v.BindEnv("setting.apiSetting.baseUrl", BaseURLEnv); err != nil {
		return configJson, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return configJson, fmt.Errorf("配置文件读取失败，请检查配置文件填写是否正确: %w", err)
		}
	}
	if err := v.Unmarshal(&configJson); err != nil {
		return configJson, fmt.Errorf("配置文件解析失败: %w", err)
	}
	return configJson, configJson.Check()
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig().Setting
	v.SetDefault("setting.basicSetting.colorLog", def.BasicSetting.ColorLog)
	v.SetDefault("setting.basicSetting.logOutFileSw", def.BasicSetting.LogOutFileSw)
	v.SetDefault("setting.basicSetting.logLevel", def.BasicSetting.LogLevel)
	v.SetDefault("setting.basicSetting.logDir", def.BasicSetting.LogDir)
	v.SetDefault("setting.apiSetting.baseUrl", def.ApiSetting.BaseUrl)
	v.SetDefault("setting.apiSetting.origin", def.ApiSetting.Origin)
	v.SetDefault("setting.apiSetting.timeout", def.ApiSetting.Timeout)
	v.SetDefault("setting.apiSetting.tokenKey", def.ApiSetting.TokenKey)
	v.SetDefault("setting.serverSetting.host", def.ServerSetting.Host)
	v.SetDefault("setting.serverSetting.port", def.ServerSetting.Port)
	v.SetDefault("setting.serverSetting.proxyTarget", def.ServerSetting.ProxyTarget)
	v.SetDefault("setting.serverSetting.assetsDir", def.ServerSetting.AssetsDir)
	v.SetDefault("setting.serverSetting.dbPath", def.ServerSetting.DBPath)
	v.SetDefault("setting.emailInform.SMTPPort", def.EmailInform.SMTPPort)
}

// Check 配置文件检测检验
func (c JSONDataForConfig) Check() error {
	api := c.Setting.ApiSetting
	if api.Timeout <= 0 {
		return fmt.Errorf("apiSetting.timeout 必须大于0, 当前为 %d", api.Timeout)
	}
	if !strings.HasPrefix(api.BaseUrl, "http") && !strings.HasPrefix(api.Origin, "http") {
		return fmt.Errorf("apiSetting.baseUrl 为相对路径时 apiSetting.origin 必须以 http 开头")
	}
	if c.Setting.ServerSetting.Port <= 0 || c.Setting.ServerSetting.Port > 65535 {
		return fmt.Errorf("serverSetting.port 不合法: %d", c.Setting.ServerSetting.Port)
	}
	mail := c.Setting.EmailInform
	if mail.Sw == 1 && (mail.SMTPHost == "" || len(mail.ToEmails) == 0) {
		return errors.New("已开启邮件通知，但 SMTPHost 或 toEmails 未配置")
	}
	return nil
}

// ApiBaseURL 返回请求使用的完整接口前缀
func (a ApiSetting) ApiBaseURL() string {
	if strings.HasPrefix(a.BaseUrl, "http") {
		return strings.TrimRight(a.BaseUrl, "/")
	}
	return strings.TrimRight(a.Origin, "/") + "/" + strings.Trim(a.BaseUrl, "/")
}

func (a ApiSetting) TimeoutDuration() time.Duration {
	return time.Duration(a.Timeout) * time.Millisecond
}

func (s ServerSetting) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
