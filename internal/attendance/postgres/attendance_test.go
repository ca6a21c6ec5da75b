package postgres_test

import (
	"testing"
	"time"

	"github.com/frahmantamala/employee-portal/internal/attendance"
	attendancePostgres "github.com/frahmantamala/employee-portal/internal/attendance/postgres"
	attendanceDatamodel "github.com/frahmantamala/employee-portal/internal/core/datamodel/attendance"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestAttendancePostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Attendance Postgres Suite")
}

// SQLite-compatible models for testing
type SQLiteEmployee struct {
	EmpID     int64  `gorm:"column:emp_id;primaryKey"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
	Status    string `gorm:"column:status"`
}

func (SQLiteEmployee) TableName() string { return "employees" }

type SQLiteAttendance struct {
	AttendanceID   int64      `gorm:"column:attendance_id;primaryKey"`
	EmpID          int64      `gorm:"column:emp_id;uniqueIndex:idx_attendance_emp_day"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;uniqueIndex:idx_attendance_emp_day"`
	CheckIn        *time.Time `gorm:"column:check_in"`
	CheckOut       *time.Time `gorm:"column:check_out"`
	Status         string     `gorm:"column:status"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
}

func (SQLiteAttendance) TableName() string { return "attendance" }

var _ = Describe("Attendance PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo *attendancePostgres.Repository
	)

	day := time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)

	seedEmployee := func(id int64, first, last string) {
		Expect(db.Create(&SQLiteEmployee{EmpID: id, FirstName: first, LastName: last, Status: "active"}).Error).To(Succeed())
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteEmployee{}, &SQLiteAttendance{})
		Expect(err).NotTo(HaveOccurred())

		repo = attendancePostgres.NewRepository(db)
		seedEmployee(10, "Sinta", "Dewi")
	})

	Describe("GetForDay", func() {
		It("should return nil when no record exists", func() {
			rec, err := repo.GetForDay(10, day)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec).To(BeNil())
		})

		It("should return the day's record once created", func() {
			checkIn := day.Add(9 * time.Hour)
			Expect(repo.Create(&attendanceDatamodel.Attendance{
				EmpID:          10,
				AttendanceDate: day,
				CheckIn:        &checkIn,
				Status:         attendance.StatusPresent,
			})).To(Succeed())

			rec, err := repo.GetForDay(10, day)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec).NotTo(BeNil())
			Expect(rec.Status).To(Equal(attendance.StatusPresent))
			Expect(rec.CheckIn).NotTo(BeNil())
		})
	})

	Describe("SetCheckOut", func() {
		It("should fill only the check_out column", func() {
			checkIn := day.Add(9 * time.Hour)
			rec := &attendanceDatamodel.Attendance{
				EmpID:          10,
				AttendanceDate: day,
				CheckIn:        &checkIn,
				Status:         attendance.StatusPresent,
			}
			Expect(repo.Create(rec)).To(Succeed())

			Expect(repo.SetCheckOut(rec.AttendanceID, day.Add(17*time.Hour))).To(Succeed())

			updated, err := repo.GetForDay(10, day)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.CheckOut).NotTo(BeNil())
			Expect(updated.CheckIn.Before(*updated.CheckOut)).To(BeTrue())
		})
	})

	Describe("ListForEmployeeRange", func() {
		It("should return only rows inside the range, newest first", func() {
			for _, d := range []time.Time{
				day,
				day.AddDate(0, 0, -1),
				day.AddDate(0, -1, 0), // previous month, outside range
			} {
				Expect(repo.Create(&attendanceDatamodel.Attendance{
					EmpID:          10,
					AttendanceDate: d,
					Status:         attendance.StatusPresent,
				})).To(Succeed())
			}

			start, end := attendance.MonthRange(day)
			rows, err := repo.ListForEmployeeRange(10, start, end)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[0].Date.After(rows[1].Date)).To(BeTrue())
			Expect(rows[0].FullName).To(Equal("Sinta Dewi"))
		})
	})

	Describe("ListForDate", func() {
		It("should return every employee's row for the day", func() {
			seedEmployee(11, "Budi", "Santoso")

			Expect(repo.Create(&attendanceDatamodel.Attendance{
				EmpID: 10, AttendanceDate: day, Status: attendance.StatusPresent,
			})).To(Succeed())
			Expect(repo.Create(&attendanceDatamodel.Attendance{
				EmpID: 11, AttendanceDate: day, Status: attendance.StatusAbsent,
			})).To(Succeed())
			Expect(repo.Create(&attendanceDatamodel.Attendance{
				EmpID: 10, AttendanceDate: day.AddDate(0, 0, -1), Status: attendance.StatusPresent,
			})).To(Succeed())

			rows, err := repo.ListForDate(day)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
		})
	})
})
