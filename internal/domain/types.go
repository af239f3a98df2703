package domain

import "strings"

// PositionSide는 포지션 방향을 정의합니다
type PositionSide string

const (
	LongPosition  PositionSide = "LONG"
	ShortPosition PositionSide = "SHORT"
)

// IsValid는 인식 가능한 포지션 방향인지 확인합니다
func (s PositionSide) IsValid() bool {
	return s == LongPosition || s == ShortPosition
}

// String은 PositionSide의 문자열 표현을 반환합니다
func (s PositionSide) String() string {
	return string(s)
}

// ParsePositionSide는 문자열을 PositionSide로 변환합니다.
// 대소문자를 구분하지 않으며, 인식할 수 없는 값이면 false를 반환합니다
func ParsePositionSide(s string) (PositionSide, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LONG":
		return LongPosition, true
	case "SHORT":
		return ShortPosition, true
	default:
		return "", false
	}
}
