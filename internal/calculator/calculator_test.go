package calculator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assist-by/poscalc/internal/domain"
)

func TestComputeValidation(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Input)
		wantErr error
	}{
		{"리스크 예산 0", func(in *Input) { in.RiskBudget = 0 }, ErrNonPositiveRiskBudget},
		{"리스크 예산 음수", func(in *Input) { in.RiskBudget = -100 }, ErrNonPositiveRiskBudget},
		{"진입 비율 0", func(in *Input) { in.EntryRatio = 0 }, ErrNonPositiveEntryRatio},
		{"진입 비율 음수", func(in *Input) { in.EntryRatio = -0.5 }, ErrNonPositiveEntryRatio},
		{"추가 진입 횟수 음수", func(in *Input) { in.AdditionalEntries = -1 }, ErrNegativeEntries},
		{"알 수 없는 방향", func(in *Input) { in.Direction = "BOTH" }, ErrUnknownDirection},
		{"최초 진입 가격 0", func(in *Input) { in.InitialPrice = 0 }, ErrNonPositiveInitialPrice},
		{"레버리지 0", func(in *Input) { in.Leverage = 0 }, ErrNonPositiveLeverage},
		{"가격 변동 비율 1 이상", func(in *Input) { in.PriceStep = 1 }, ErrPriceStepOutOfRange},
		{"가격 변동 비율 음수", func(in *Input) { in.PriceStep = -0.05 }, ErrPriceStepOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := testInput(domain.LongPosition, 2)
			tc.mutate(&input)

			result, err := Compute(input)

			// 검증 실패 시 부분 결과 없이 에러만 반환해야 합니다
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tc.wantErr)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.NotEmpty(t, vErr.Field)
		})
	}
}

// 리스크 예산 100, 진입 비율 0.5, 추가 진입 2회, 롱, 진입가 1, 레버리지 3배의
// 기준 시나리오를 단계별 값까지 검증합니다
func TestComputeReferenceScenario(t *testing.T) {
	result, err := Compute(testInput(domain.LongPosition, 2))
	require.NoError(t, err)
	require.Len(t, result.Entries, 3)

	first := result.Entries[0]
	assert.Equal(t, 1, first.Index)
	assert.InDelta(t, 1.0, first.Price, 1e-9)
	assert.InDelta(t, 50.0, first.EntryAmount, 1e-9)
	assert.InDelta(t, 50.0, first.CumulativeAmount, 1e-9)
	assert.InDelta(t, 1.0, first.AveragePrice, 1e-9)
	assert.InDelta(t, 0.0, first.CumulativeLoss, 1e-9)

	second := result.Entries[1]
	assert.Equal(t, 2, second.Index)
	assert.InDelta(t, 0.95, second.Price, 1e-9)
	assert.InDelta(t, 100.0, second.CumulativeAmount, 1e-9)
	assert.InDelta(t, 102.6316, second.CumulativeQty, 1e-4)
	assert.InDelta(t, 0.97436, second.AveragePrice, 1e-5)
	assert.InDelta(t, 2.5, second.CumulativeLoss, 1e-9)

	third := result.Entries[2]
	assert.Equal(t, 3, third.Index)
	assert.InDelta(t, 0.9025, third.Price, 1e-9)
	assert.InDelta(t, 150.0, third.CumulativeAmount, 1e-9)
	assert.InDelta(t, 158.0332, third.CumulativeQty, 1e-4)
	assert.InDelta(t, 0.94917, third.AveragePrice, 1e-5)
	assert.InDelta(t, 7.375, third.CumulativeLoss, 1e-9)

	// 레버리지 3배 롱의 청산가는 진입가의 2/3입니다
	assert.InDelta(t, 2.0/3.0, result.LiquidationPrice, 1e-9)
}

func TestComputeDeterminism(t *testing.T) {
	input := testInput(domain.ShortPosition, 5)

	first, err := Compute(input)
	require.NoError(t, err)
	second, err := Compute(input)
	require.NoError(t, err)

	// 같은 입력은 항상 같은 결과를 반환해야 합니다
	assert.Equal(t, first, second)
}

func TestComputeEntryRatioOverCommitment(t *testing.T) {
	// 총 진입 금액이 리스크 예산을 넘어도 계산 자체는 허용됩니다
	input := testInput(domain.LongPosition, 9)
	input.EntryRatio = 0.5

	result, err := Compute(input)
	require.NoError(t, err)

	last := result.Entries[len(result.Entries)-1]
	assert.Greater(t, last.CumulativeAmount, input.RiskBudget)
}
