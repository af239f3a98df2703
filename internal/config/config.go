package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// 거래 설정
	Trading struct {
		RiskBudget        float64 `envconfig:"RISK_BUDGET" default:"100"`
		EntryRatio        float64 `envconfig:"ENTRY_RATIO" default:"0.5"`
		AdditionalEntries int     `envconfig:"ADDITIONAL_ENTRIES" default:"2"`
		Direction         string  `envconfig:"DIRECTION" default:"LONG"`
		InitialPrice      float64 `envconfig:"INITIAL_PRICE" default:"1"`
		Leverage          float64 `envconfig:"LEVERAGE" default:"5"`
	}
}

// ValidateConfig는 설정이 유효한지 확인합니다.
// 세부 검증은 calculator 패키지에서 다시 수행하므로 여기서는 범위만 확인합니다
func ValidateConfig(cfg *Config) error {
	if cfg.Trading.Leverage < 1 || cfg.Trading.Leverage > 125 {
		return fmt.Errorf("레버리지는 1 이상 125 이하이어야 합니다")
	}

	return nil
}

// LoadConfig는 환경변수에서 설정을 로드합니다
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (없으면 환경변수만 사용)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf(".env 파일 로드 실패: %w", err)
	}

	var cfg Config
	// 환경변수를 구조체로 파싱
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("환경변수 처리 실패: %w", err)
	}

	// 설정값 검증
	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("설정값 검증 실패: %w", err)
	}

	return &cfg, nil
}
