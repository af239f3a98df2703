package calculator

import "fmt"

// 입력값 검증에 사용하는 에러들을 정의합니다
var (
	ErrNonPositiveRiskBudget   = fmt.Errorf("리스크 예산은 0보다 커야 합니다")
	ErrNonPositiveEntryRatio   = fmt.Errorf("진입 비율은 0보다 커야 합니다")
	ErrNegativeEntries         = fmt.Errorf("추가 진입 횟수는 0 이상이어야 합니다")
	ErrUnknownDirection        = fmt.Errorf("인식할 수 없는 포지션 방향입니다")
	ErrNonPositiveInitialPrice = fmt.Errorf("최초 진입 가격은 0보다 커야 합니다")
	ErrNonPositiveLeverage     = fmt.Errorf("레버리지는 0보다 커야 합니다")
	ErrPriceStepOutOfRange     = fmt.Errorf("가격 변동 비율은 0 초과 1 미만이어야 합니다")
)

// ValidationError는 입력값 검증 에러를 정의합니다
type ValidationError struct {
	Field string
	Err   error
}

// Error는 error 인터페이스를 구현합니다
func (e *ValidationError) Error() string {
	return fmt.Sprintf("유효하지 않은 %s: %v", e.Field, e.Err)
}

// Unwrap은 내부 에러를 반환합니다 (errors.Is/As 지원을 위함)
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}
