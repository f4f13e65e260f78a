package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		strValue, ok := value.(string)
		if ok {
			if strValue != "" {
				f[k] = strValue
			}
		} else {
			f[k] = value
		}
	}
	return f
}

// New middleware журналирования запросов api; ответы с кодом 3xx
// и выше пишутся с уровнем warning
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	d := new(data)
	d.pid = os.Getpid()
	ftm := getFuncTagMap(cfg, d)
	return func(c *fiber.Ctx) error {
		d.start = time.Now()
		err := c.Next()
		d.end = time.Now()
		// preflight не журналируется
		if c.Method() == fiber.MethodOptions {
			return err
		}
		entry := log.WithFields(getLogrusFields(ftm, c, d))
		if cfg.Logger != nil {
			entry = cfg.Logger.WithFields(getLogrusFields(ftm, c, d))
		}
		if c.Response() != nil && c.Response().StatusCode() >= 300 {
			entry.Warn("запрос api")
		} else {
			entry.Info("запрос api")
		}
		return err
	}
}
