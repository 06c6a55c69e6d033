package dashboard

import (
	"time"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-core-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-core-go/internal/domain/sysconfig"
)

// seriesConcurrency bounds the per-point queries in flight for one series
const seriesConcurrency = 4

type DashboardServiceImpl struct {
	attendance.RecordRepository
	employee.HeadcountRepository
	config sysconfig.Store
	now    func() time.Time
}

func NewDashboardService(records attendance.RecordRepository, headcount employee.HeadcountRepository, config sysconfig.Store) dashboard.DashboardService {
	return &DashboardServiceImpl{
		RecordRepository:    records,
		HeadcountRepository: headcount,
		config:              config,
		now:                 time.Now,
	}
}
