package ioc

import (
	"gitee.com/flycash/campaign-platform/internal/service/scheduler"
)

func InitTasks(s *scheduler.Scheduler) []Task {
	return []Task{s}
}
