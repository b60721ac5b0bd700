package statistic

import (
	"fmt"

	"github.com/learnquest-lab/backend/internal/entity"
)

func redisKeyPointLeaderBoard(period entity.LeaderBoardPeriodType) string {
	return fmt.Sprintf("point:%s", period.Period())
}

func redisKeyQuizLeaderBoard(period entity.LeaderBoardPeriodType) string {
	return fmt.Sprintf("quiz:%s", period.Period())
}

func redisKeyLeaderBoard(orderedBy string, period entity.LeaderBoardPeriodType) (string, error) {
	switch orderedBy {
	case "point":
		return redisKeyPointLeaderBoard(period), nil
	case "quiz":
		return redisKeyQuizLeaderBoard(period), nil
	}

	return "", fmt.Errorf("expected ordered by point or quiz, but got %s", orderedBy)
}
