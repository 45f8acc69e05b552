package progress

import "gorm.io/gorm"

type ProgressContainer struct {
	Service Service
	Handler *Handler
}

func NewProgressContainer(db *gorm.DB) *ProgressContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &ProgressContainer{
		Service: service,
		Handler: handler,
	}
}
