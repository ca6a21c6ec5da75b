package postgres_test

import (
	"testing"
	"time"

	employeeDatamodel "github.com/frahmantamala/employee-portal/internal/core/datamodel/employee"
	"github.com/frahmantamala/employee-portal/internal/employee"
	employeePostgres "github.com/frahmantamala/employee-portal/internal/employee/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestEmployeePostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Postgres Suite")
}

// SQLiteEmployee is a SQLite-compatible model for testing
type SQLiteEmployee struct {
	EmpID      int64     `gorm:"column:emp_id;primaryKey"`
	FirstName  string    `gorm:"column:first_name;not null"`
	LastName   string    `gorm:"column:last_name;not null"`
	Email      string    `gorm:"column:email"`
	Phone      string    `gorm:"column:phone"`
	Department string    `gorm:"column:department"`
	Role       string    `gorm:"column:role;not null"`
	Status     string    `gorm:"column:status;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (SQLiteEmployee) TableName() string {
	return "employees"
}

var _ = Describe("Employee PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo *employeePostgres.Repository
	)

	seed := func(first, last, department string) int64 {
		emp := &employeeDatamodel.Employee{
			FirstName:  first,
			LastName:   last,
			Department: department,
			Role:       "staff",
			Status:     employee.StatusActive,
		}
		Expect(repo.Create(emp)).To(Succeed())
		return emp.EmpID
	}

	BeforeEach(func() {
		var err error
		// Use SQLite in-memory database for testing
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteEmployee{})
		Expect(err).NotTo(HaveOccurred())

		repo = employeePostgres.NewRepository(db)
	})

	Describe("List and Count", func() {
		BeforeEach(func() {
			seed("Arif", "Wirawan", "Management")
			seed("Sinta", "Dewi", "Engineering")
			seed("Budi", "Santoso", "Engineering")
			seed("Dewi", "Lestari", "Finance")
		})

		It("should match a numeric query against the employee ID exactly", func() {
			filter := employee.ListFilter{Query: "2", Sort: employee.SortAsc}

			count, err := repo.Count(filter)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))

			rows, err := repo.List(filter, 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].EmpID).To(Equal(int64(2)))
		})

		It("should treat a signed number as a name query, not an ID", func() {
			// "+3" parses as an integer but is not digits-only; it must
			// fall through to the name search and match nothing, never
			// resolve to employee 3.
			for _, q := range []string{"+3", "-3"} {
				filter := employee.ListFilter{Query: q, Sort: employee.SortAsc}

				count, err := repo.Count(filter)
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(BeZero())

				rows, err := repo.List(filter, 10, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(BeEmpty())
			}
		})

		It("should match a text query as a case-insensitive substring of the full name", func() {
			filter := employee.ListFilter{Query: "dewi", Sort: employee.SortAsc}

			rows, err := repo.List(filter, 10, 0)
			Expect(err).NotTo(HaveOccurred())
			// Matches both "Sinta Dewi" and "Dewi Lestari"
			Expect(rows).To(HaveLen(2))
		})

		It("should match across the space between first and last name", func() {
			filter := employee.ListFilter{Query: "ta dew", Sort: employee.SortAsc}

			rows, err := repo.List(filter, 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].FirstName).To(Equal("Sinta"))
		})

		It("should filter by exact department", func() {
			filter := employee.ListFilter{Department: "Engineering", Sort: employee.SortAsc}

			count, err := repo.Count(filter)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(2)))
		})

		It("should order by emp_id descending on request", func() {
			filter := employee.ListFilter{Sort: employee.SortDesc}

			rows, err := repo.List(filter, 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(4))
			Expect(rows[0].EmpID).To(BeNumerically(">", rows[1].EmpID))
		})

		It("should apply limit and offset", func() {
			filter := employee.ListFilter{Sort: employee.SortAsc}

			rows, err := repo.List(filter, 2, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[0].EmpID).To(Equal(int64(3)))
		})
	})

	Describe("GetByID", func() {
		It("should return the not-found sentinel for a missing row", func() {
			_, err := repo.GetByID(42)
			Expect(err).To(Equal(employee.ErrNotFound))
		})

		It("should fetch an existing row", func() {
			id := seed("Arif", "Wirawan", "Management")

			emp, err := repo.GetByID(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(emp.FirstName).To(Equal("Arif"))
		})
	})

	Describe("Update and Delete", func() {
		It("should persist field changes", func() {
			id := seed("Arif", "Wirawan", "Management")

			emp, err := repo.GetByID(id)
			Expect(err).NotTo(HaveOccurred())

			emp.Department = "Finance"
			emp.Status = employee.StatusInactive
			Expect(repo.Update(emp)).To(Succeed())

			updated, err := repo.GetByID(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Department).To(Equal("Finance"))
			Expect(updated.Status).To(Equal(employee.StatusInactive))
		})

		It("should remove the row", func() {
			id := seed("Arif", "Wirawan", "Management")

			Expect(repo.Delete(id)).To(Succeed())

			_, err := repo.GetByID(id)
			Expect(err).To(Equal(employee.ErrNotFound))
		})
	})
})
