package calculator

import (
	"github.com/assist-by/poscalc/internal/domain"
)

// GeneratePlan은 물타기 진입 계획을 계산합니다.
// 최초 진입 이후 매 단계마다 가격이 직전 진입가 기준으로 PriceStep만큼
// 불리한 방향으로 움직였다고 가정하고 같은 금액을 추가 진입합니다.
// 각 단계의 누적 손실은 해당 단계 가격까지 가격이 단조롭게 불리하게
// 움직였다는 최악의 가정 아래 평균 진입가 대비로 계산합니다.
// 입력값 검증은 Compute에서 수행하므로 호출 전에 검증이 끝나 있어야 합니다
func GeneratePlan(input Input) []PositionEntry {
	step := input.priceStep()
	entryAmount := input.RiskBudget * input.EntryRatio

	entries := make([]PositionEntry, 0, input.AdditionalEntries+1)

	price := input.InitialPrice
	cumulativeAmount := 0.0
	cumulativeQty := 0.0

	for i := 0; i <= input.AdditionalEntries; i++ {
		// 최초 진입 이후에는 직전 가격에 비율을 곱하는 복리 방식으로 다음 가격을 정합니다
		if i > 0 {
			if input.Direction == domain.LongPosition {
				price *= 1 - step
			} else {
				price *= 1 + step
			}
		}

		entryQty := entryAmount / price
		cumulativeAmount += entryAmount
		cumulativeQty += entryQty
		averagePrice := cumulativeAmount / cumulativeQty

		// 롱은 현재가가 평단보다 낮을 때, 숏은 높을 때 손실이 양수가 됩니다
		var cumulativeLoss float64
		if input.Direction == domain.LongPosition {
			cumulativeLoss = (averagePrice - price) * cumulativeQty
		} else {
			cumulativeLoss = (price - averagePrice) * cumulativeQty
		}

		entries = append(entries, PositionEntry{
			Index:            i + 1,
			Price:            price,
			EntryAmount:      entryAmount,
			EntryQty:         entryQty,
			CumulativeAmount: cumulativeAmount,
			CumulativeQty:    cumulativeQty,
			AveragePrice:     averagePrice,
			CumulativeLoss:   cumulativeLoss,
		})
	}

	return entries
}
