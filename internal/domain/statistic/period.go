package statistic

import (
	"fmt"
	"time"

	"github.com/learnquest-lab/backend/internal/entity"
	"github.com/learnquest-lab/backend/pkg/dateutil"
)

func ToPeriodWithTime(periodString string, current time.Time) (entity.LeaderBoardPeriodType, error) {
	switch periodString {
	case "week":
		return entity.NewLeaderBoardPeriodWeek(current), nil
	case "month":
		return entity.NewLeaderBoardPeriodMonth(current), nil
	}

	return nil, fmt.Errorf("invalid period, expected week or month, but got %s", periodString)
}

func ToPeriod(periodString string) (entity.LeaderBoardPeriodType, error) {
	return ToPeriodWithTime(periodString, time.Now())
}

// PreviousPeriod returns the period of the same kind directly before p.
func PreviousPeriod(p entity.LeaderBoardPeriodType) (entity.LeaderBoardPeriodType, error) {
	switch p.(type) {
	case entity.LeaderBoardPeriodWeek:
		return entity.NewLeaderBoardPeriodWeek(dateutil.LastWeek(p.Start())), nil
	case entity.LeaderBoardPeriodMonth:
		return entity.NewLeaderBoardPeriodMonth(dateutil.LastMonth(p.Start())), nil
	}

	return nil, fmt.Errorf("invalid period type %T", p)
}
