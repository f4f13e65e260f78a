package fiberlog

import "github.com/sirupsen/logrus"

// Config настройки журналирования запросов
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

var ConfigDefault Config = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		TagIP,
	},
}
