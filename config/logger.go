package config

import (
	"log"

	"go.uber.org/zap"
)

var Log *zap.SugaredLogger

// InitLogger khởi tạo zap logger dùng chung cho repo và store
func InitLogger() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	Log = logger.Sugar()
}

func init() {
	// Tests và CLI có thể dùng Log trước khi InitLogger được gọi
	Log = zap.NewNop().Sugar()
}
