package global

import (
	"fmt"

	"lb-front/config"
	"lb-front/dao"
	"lb-front/notify"
	"lb-front/request"
	"lb-front/storage"
	"lb-front/store"
	"lb-front/utils"

	"gorm.io/gorm"
)

// App 应用上下文，由 main 创建后注入各处，不使用包级单例
type App struct {
	Config   config.JSONDataForConfig
	DB       *gorm.DB //为空时使用内存存储
	Storage  storage.Storage
	History  *notify.History
	Notifier notify.Notifier
	Loading  *request.Loading
	Client   *request.Client
	Store    *store.MainStore
}

// NewApp 按配置组装上下文，db 为空时 token 只保存在内存中
func NewApp(cfg config.JSONDataForConfig, db *gorm.DB) *App {
	app := &App{
		Config:  cfg,
		DB:      db,
		History: notify.NewHistory(20),
		Loading: request.NewLoading(),
		Store:   store.New(),
	}
	if db != nil {
		app.Storage = storage.NewSqlite(db)
	} else {
		app.Storage = storage.NewMemory()
	}

	notifiers := []notify.Notifier{notify.LogNotifier{}, app.History}
	mail := cfg.Setting.EmailInform
	if mail.Sw == 1 {
		notifiers = append(notifiers, notify.NewMailNotifier(utils.MailSetting{
			Host:     mail.SMTPHost,
			Port:     mail.SMTPPort,
			UserName: mail.UserName,
			Password: mail.Password,
		}, mail.ToEmails))
	}
	app.Notifier = notify.Multi(notifiers...)

	app.Client = request.NewFromConfig(cfg.Setting.ApiSetting,
		request.WithStorage(app.Storage),
		request.WithNotifier(app.Notifier),
		request.WithLoading(app.Loading),
	)
	return app
}

// OpenApp 打开sqlite后组装上下文
func OpenApp(cfg config.JSONDataForConfig) (*App, error) {
	db, err := dao.SqliteInit(cfg.Setting.ServerSetting.DBPath)
	if err != nil {
		return nil, fmt.Errorf("初始化数据库失败: %w", err)
	}
	return NewApp(cfg, db), nil
}

// TokenKey token 在本地存储中的 key
func (a *App) TokenKey() string {
	if a.Config.Setting.ApiSetting.TokenKey == "" {
		return config.DefaultTokenKey
	}
	return a.Config.Setting.ApiSetting.TokenKey
}

func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
