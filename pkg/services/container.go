package service

import (
	client "github.com/sh5080/keyword-go/pkg/clients"
	"github.com/sh5080/keyword-go/pkg/configs"
	_interface "github.com/sh5080/keyword-go/pkg/interfaces"
	repository "github.com/sh5080/keyword-go/pkg/repositories"
	"github.com/sh5080/keyword-go/pkg/services/api"
)

// NewServiceContainer는 설정에 따라 서비스 인스턴스를 조립합니다
func NewServiceContainer(config *configs.EnvConfig) (*_interface.ServiceContainer, error) {
	completionClient, err := client.NewCompletionAPIClient(config)
	if err != nil {
		return nil, err
	}

	estimateRepository, err := repository.NewEstimateRepository(config)
	if err != nil {
		return nil, err
	}

	return &_interface.ServiceContainer{
		EstimateService:    api.NewEstimateService(config, completionClient, estimateRepository),
		CompletionClient:   completionClient,
		EstimateRepository: estimateRepository,
	}, nil
}
