package service

import (
	"strings"

	"vendor-marketplace-be/internal/pkg/apperror"
	"vendor-marketplace-be/internal/pkg/logger"
)

type IAdminService interface {
	GetLogs(level string, page, limit int) ([]logger.LogEntry, error)
}

type adminService struct {
	logger logger.ILogger
}

func NewAdminService(log logger.ILogger) IAdminService {
	return &adminService{logger: log}
}

func (s *adminService) GetLogs(level string, page, limit int) ([]logger.LogEntry, error) {
	level = strings.ToUpper(strings.TrimSpace(level))
	switch level {
	case "", "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return nil, apperror.InvalidInput("level must be one of DEBUG, INFO, WARN, ERROR")
	}

	page, limit = normalizePage(page, limit)
	entries, err := s.logger.GetLogs(level, limit, (page-1)*limit)
	if err != nil {
		return nil, apperror.Internal("failed to read logs", err)
	}
	return entries, nil
}
