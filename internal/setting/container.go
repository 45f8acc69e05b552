package setting

import "gorm.io/gorm"

type SettingContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewSettingContainer(db *gorm.DB) *SettingContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &SettingContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
