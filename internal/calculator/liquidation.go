package calculator

import (
	"github.com/assist-by/poscalc/internal/domain"
)

// EstimateLiquidationPrice는 단일 진입 포지션의 추정 청산가를 계산합니다.
// 평가 손실이 증거금 전체와 같아지는 시점에 청산된다는 단순화 모델을 사용하며,
// 유지증거금률, 수수료, 펀딩비는 고려하지 않는 1차 근사치입니다
func EstimateLiquidationPrice(initialPrice float64, direction domain.PositionSide, leverage float64) float64 {
	if direction == domain.LongPosition {
		return initialPrice * (1 - 1/leverage)
	}
	return initialPrice * (1 + 1/leverage)
}
