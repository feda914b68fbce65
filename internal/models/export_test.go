package models

import (
	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

func NewLogger(l zerolog.Logger) gorm_logger.Interface {
	return &logger{Logger: l}
}
