package calculator

import (
	"github.com/assist-by/poscalc/internal/domain"
)

// DefaultPriceStep은 추가 진입 사이의 기본 가격 변동 비율입니다 (5%)
const DefaultPriceStep = 0.05

// Input은 진입 계획 계산에 필요한 거래 파라미터를 정의합니다.
// 레버리지는 청산가 추정에만 사용되며, 진입 금액이나 수량에는 영향을 주지 않습니다.
// 진입 금액은 항상 RiskBudget * EntryRatio로 결정됩니다
type Input struct {
	RiskBudget        float64             // 감당할 수 있는 최대 손실 금액 (USDT)
	EntryRatio        float64             // 회당 진입 비율 (0보다 커야 하며 상한은 없음)
	AdditionalEntries int                 // 최초 진입 이후 추가 진입 횟수
	Direction         domain.PositionSide // 포지션 방향 (롱/숏)
	InitialPrice      float64             // 최초 진입 가격
	Leverage          float64             // 레버리지 배율
	PriceStep         float64             // 단계별 가격 변동 비율 (0이면 DefaultPriceStep 사용)
}

// priceStep은 설정된 가격 변동 비율을 반환합니다
func (in Input) priceStep() float64 {
	if in.PriceStep == 0 {
		return DefaultPriceStep
	}
	return in.PriceStep
}

// PositionEntry는 진입 계획의 한 단계 결과를 담습니다
type PositionEntry struct {
	Index            int     // 진입 순번 (1부터 시작)
	Price            float64 // 이번 진입 가격
	EntryAmount      float64 // 이번 진입 금액 (USDT)
	EntryQty         float64 // 이번 진입 수량
	CumulativeAmount float64 // 누적 진입 금액 (USDT)
	CumulativeQty    float64 // 누적 수량
	AveragePrice     float64 // 평균 진입가
	CumulativeLoss   float64 // 누적 평가 손실 (USDT)
}

// Result는 진입 계획과 청산가 추정치를 함께 담습니다
type Result struct {
	Entries          []PositionEntry // 진입 순서대로 정렬된 계획
	LiquidationPrice float64         // 추정 청산가
}
