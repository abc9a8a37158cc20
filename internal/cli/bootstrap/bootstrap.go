package bootstrap

import (
	"go.uber.org/zap"

	"VenuePOS/internal/cli/api"
	fsrepo "VenuePOS/internal/cli/repo/fs"
	"VenuePOS/internal/cli/router"
	"VenuePOS/internal/cli/session"
	"VenuePOS/internal/cli/store"
	"VenuePOS/internal/config"
)

// App собирает клиентские зависимости в явном виде: никаких глобальных
// синглтонов, каждый store получает общий HTTP-клиент и логгер.
type App struct {
	API     *api.Client
	Session *session.Store
	Guard   *router.Guard
	Devices *store.DeviceStore
	Items   *store.ItemStore
	Orders  *store.OrderStore
	Users   *store.UserStore
	Log     *zap.SugaredLogger
}

// NewApp поднимает клиентское окружение: HTTP-клиент с base URL из конфига,
// session store с восстановлением персистентной записи, entity stores.
func NewApp(cfg *config.Config) (*App, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	sugar := logger.Sugar()

	client := api.New(cfg.ServerURL, "")
	sess := session.New(client,
		fsrepo.UserFSStore{Path: cfg.SessionFile},
		fsrepo.SessionFSStore{Path: cfg.TokenFile},
		sugar)
	sess.Restore()

	return &App{
		API:     client,
		Session: sess,
		Guard:   router.NewGuard(sess),
		Devices: store.NewDeviceStore(client, sugar),
		Items:   store.NewItemStore(client, sugar),
		Orders:  store.NewOrderStore(client, sugar),
		Users:   store.NewUserStore(client, sugar),
		Log:     sugar,
	}, nil
}

// Close сбрасывает буфер логгера.
func (a *App) Close() {
	_ = a.Log.Sync()
}
