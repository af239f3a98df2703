// Package format은 계산 결과를 화면에 표시하기 위한 숫자 포맷팅 규칙을 제공합니다.
// 반올림은 표시 단계에서만 적용되며 계산 로직에는 영향을 주지 않습니다
package format

import (
	"math"
	"strconv"
)

// 값 유형별 소수점 자릿수를 정의합니다
const (
	MoneyPrecision    = 2 // 금액 (USDT)
	QuantityPrecision = 4 // 수량
	PricePrecision    = 5 // 가격
)

// Fixed는 값을 지정한 소수점 자릿수의 고정 소수 문자열로 변환합니다.
// NaN이나 무한대처럼 표시할 수 없는 값은 에러 대신 0으로 대체합니다
func Fixed(value float64, precision int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// Money는 금액을 $ 접두사와 소수점 2자리로 변환합니다
func Money(value float64) string {
	return "$" + Fixed(value, MoneyPrecision)
}

// Quantity는 수량을 소수점 4자리로 변환합니다
func Quantity(value float64) string {
	return Fixed(value, QuantityPrecision)
}

// Price는 가격을 $ 접두사와 소수점 5자리로 변환합니다
func Price(value float64) string {
	return "$" + Fixed(value, PricePrecision)
}
