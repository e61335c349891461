package cmd

import (
	"time"

	"github.com/ronharel02/hilan-attendance/internal/config"
	"github.com/ronharel02/hilan-attendance/internal/model"
	"github.com/ronharel02/hilan-attendance/internal/payperiod"
)

// resolvePeriod picks the pay period a command operates on. With no
// -m/-y flags it is the period containing now; otherwise the explicitly
// requested period, defaulting the missing half to now.
func resolvePeriod(cfg config.Config, monthFlag string, yearFlag int, now time.Time) (payperiod.PayPeriod, error) {
	if monthFlag == "" && yearFlag == 0 {
		return payperiod.Containing(now, cfg.PayPeriodStartDay)
	}

	month := now.Month()
	if monthFlag != "" {
		var err error
		month, err = model.ParseMonth(monthFlag)
		if err != nil {
			return payperiod.PayPeriod{}, err
		}
	}
	year := yearFlag
	if year == 0 {
		year = now.Year()
	}
	return payperiod.ForLabel(month, year, cfg.PayPeriodStartDay)
}
