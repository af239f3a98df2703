package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/assist-by/poscalc/internal/calculator"
	"github.com/assist-by/poscalc/internal/config"
	"github.com/assist-by/poscalc/internal/domain"
	"github.com/assist-by/poscalc/internal/format"
)

func main() {
	// 로그 설정
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// 설정 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	// 명령줄 플래그 정의 (환경변수 설정을 덮어씁니다)
	riskBudget := flag.Float64("risk", cfg.Trading.RiskBudget, "감당할 수 있는 최대 손실 금액 (USDT)")
	entryRatio := flag.Float64("ratio", cfg.Trading.EntryRatio, "회당 진입 비율 (리스크 예산 대비)")
	additionalEntries := flag.Int("entries", cfg.Trading.AdditionalEntries, "최초 진입 이후 추가 진입 횟수")
	direction := flag.String("direction", cfg.Trading.Direction, "포지션 방향 (LONG 또는 SHORT)")
	initialPrice := flag.Float64("price", cfg.Trading.InitialPrice, "최초 진입 가격")
	leverage := flag.Float64("leverage", cfg.Trading.Leverage, "레버리지 배율")

	// 플래그 파싱
	flag.Parse()

	side, ok := domain.ParsePositionSide(*direction)
	if !ok {
		log.Fatalf("인식할 수 없는 포지션 방향: %s (LONG 또는 SHORT만 가능합니다)", *direction)
	}

	input := calculator.Input{
		RiskBudget:        *riskBudget,
		EntryRatio:        *entryRatio,
		AdditionalEntries: *additionalEntries,
		Direction:         side,
		InitialPrice:      *initialPrice,
		Leverage:          *leverage,
	}

	result, err := calculator.Compute(input)
	if err != nil {
		log.Printf("계산 실패: %v", err)
		os.Exit(1)
	}

	printPlan(input, result)
}

// printPlan은 진입 계획을 표 형태로 출력합니다
func printPlan(input calculator.Input, result *calculator.Result) {
	fmt.Printf("\n=== 물타기 진입 계획 (%s, 레버리지 %gx) ===\n\n", input.Direction, input.Leverage)

	fmt.Printf("%-4s %-12s %-12s %-12s %-12s %-12s %-12s %-12s\n",
		"순번", "진입가", "진입 금액", "진입 수량", "누적 금액", "누적 수량", "평균 진입가", "누적 손실")

	for _, entry := range result.Entries {
		fmt.Printf("%-4d %-12s %-12s %-12s %-12s %-12s %-12s %-12s\n",
			entry.Index,
			format.Price(entry.Price),
			format.Money(entry.EntryAmount),
			format.Quantity(entry.EntryQty),
			format.Money(entry.CumulativeAmount),
			format.Quantity(entry.CumulativeQty),
			format.Price(entry.AveragePrice),
			format.Money(entry.CumulativeLoss),
		)
	}

	fmt.Printf("\n추정 청산가: %s (유지증거금/수수료 미반영 근사치)\n", format.Price(result.LiquidationPrice))
}
