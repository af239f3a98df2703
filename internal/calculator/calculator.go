package calculator

// Compute는 입력값을 검증한 뒤 진입 계획과 추정 청산가를 계산합니다.
// 검증에 실패하면 ValidationError를 반환하고 아무 계산도 수행하지 않습니다.
// 순수 계산이므로 같은 입력에는 항상 같은 결과를 반환하며,
// 공유 상태가 없어 여러 고루틴에서 동시에 호출해도 안전합니다
func Compute(input Input) (*Result, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	return &Result{
		Entries:          GeneratePlan(input),
		LiquidationPrice: EstimateLiquidationPrice(input.InitialPrice, input.Direction, input.Leverage),
	}, nil
}

// validate는 입력값이 계산 가능한 범위에 있는지 확인합니다
func validate(input Input) error {
	if input.RiskBudget <= 0 {
		return newValidationError("리스크 예산", ErrNonPositiveRiskBudget)
	}
	// 진입 비율에 상한은 두지 않습니다. 총 진입 금액이 리스크 예산을 넘는
	// 파라미터 선택은 호출자의 책임입니다
	if input.EntryRatio <= 0 {
		return newValidationError("진입 비율", ErrNonPositiveEntryRatio)
	}
	if input.AdditionalEntries < 0 {
		return newValidationError("추가 진입 횟수", ErrNegativeEntries)
	}
	if !input.Direction.IsValid() {
		return newValidationError("포지션 방향", ErrUnknownDirection)
	}
	if input.InitialPrice <= 0 {
		return newValidationError("최초 진입 가격", ErrNonPositiveInitialPrice)
	}
	if input.Leverage <= 0 {
		return newValidationError("레버리지", ErrNonPositiveLeverage)
	}
	if step := input.priceStep(); step <= 0 || step >= 1 {
		return newValidationError("가격 변동 비율", ErrPriceStepOutOfRange)
	}
	return nil
}
