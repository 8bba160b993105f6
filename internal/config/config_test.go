package config_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/monster-battle/internal/config"
	"github.com/KirkDiggler/monster-battle/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoadDefaults() {
	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Assert().Equal(":50051", cfg.GRPCAddr)
	s.Assert().Equal(":8080", cfg.HTTPAddr)
	s.Assert().Empty(cfg.RedisEndpoint)
	s.Assert().Equal("info", cfg.LogLevel)
	s.Assert().Equal(config.LogFormatText, cfg.LogFormat)
	s.Assert().Equal(5, cfg.WeatherDuration)
	s.Assert().Equal(30*time.Second, cfg.ShutdownTimeout)
}

func (s *ConfigTestSuite) TestLoadFromEnv() {
	s.T().Setenv("MONSTER_BATTLE_GRPC_ADDR", ":6000")
	s.T().Setenv("MONSTER_BATTLE_REDIS_ENDPOINT", "redis:6379")
	s.T().Setenv("MONSTER_BATTLE_LOG_FORMAT", "json")
	s.T().Setenv("MONSTER_BATTLE_WEATHER_DURATION", "8")
	s.T().Setenv("MONSTER_BATTLE_SHUTDOWN_TIMEOUT", "5s")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Assert().Equal(":6000", cfg.GRPCAddr)
	s.Assert().Equal("redis:6379", cfg.RedisEndpoint)
	s.Assert().Equal(config.LogFormatJSON, cfg.LogFormat)
	s.Assert().Equal(8, cfg.WeatherDuration)
	s.Assert().Equal(5*time.Second, cfg.ShutdownTimeout)
}

func (s *ConfigTestSuite) TestLoadRejectsBadValues() {
	s.Run("unparseable number", func() {
		s.T().Setenv("MONSTER_BATTLE_WEATHER_DURATION", "five")
		_, err := config.Load()
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("validation", func() {
		s.T().Setenv("MONSTER_BATTLE_LOG_LEVEL", "loud")
		s.T().Setenv("MONSTER_BATTLE_WEATHER_DURATION", "-1")
		_, err := config.Load()
		s.Require().True(errors.IsInvalidArgument(err))
		s.Assert().Contains(err.Error(), "LogLevel")
		s.Assert().Contains(err.Error(), "WeatherDuration")
	})
}

func (s *ConfigTestSuite) TestValidate() {
	cfg := &config.Config{LogFormat: "xml"}
	err := cfg.Validate()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "GRPCAddr")
	s.Assert().Contains(err.Error(), "LogFormat")
	s.Assert().Contains(err.Error(), "ShutdownTimeout")
}

func (s *ConfigTestSuite) TestNewLogger() {
	var buf bytes.Buffer
	cfg := &config.Config{LogLevel: "warn", LogFormat: config.LogFormatJSON}
	logger := cfg.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "battle_id", "battle_1")

	var line map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &line))
	s.Assert().Equal("shown", line["msg"])
	s.Assert().Equal("battle_1", line["battle_id"])
}
