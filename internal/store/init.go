package store

import (
	"github.com/ATenderholt/rainbow-filedata/internal/logging"
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

func init() {
	logger = logging.NewLogger().Named("store")
}
